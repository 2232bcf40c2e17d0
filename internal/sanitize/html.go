package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

// Tags whose entire element, content included, is removed.
var dropWithContent = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"object":   true,
	"embed":    true,
	"form":     true,
	"button":   true,
	"textarea": true,
	"select":   true,
	"option":   true,
	"video":    true,
	"audio":    true,
	"details":  true,
	"summary":  true,
}

// Void scaffolding tags that carry no content, removed tag-only.
var dropTagOnly = map[string]bool{
	"meta":   true,
	"link":   true,
	"base":   true,
	"input":  true,
	"source": true,
	"track":  true,
}

// Tags that survive sanitization.
var allowedTags = map[string]bool{
	"p": true, "br": true, "b": true, "strong": true, "i": true, "em": true,
	"u": true, "ul": true, "ol": true, "li": true, "blockquote": true,
	"code": true, "pre": true, "span": true, "div": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"a": true,
}

// Attributes that survive on allowed tags. Everything else, event handlers
// included, is dropped.
var allowedAttrs = map[string]bool{
	"href":   true,
	"title":  true,
	"target": true,
	"rel":    true,
}

// HTML reduces v to a render-safe subset of rich text. It runs a streaming
// tokenizer over the input instead of layered regular expressions, so
// malformed or nested markup cannot smuggle an element past the allow-list.
// The output is stable under re-sanitization.
func HTML(v any) string {
	s, _ := v.(string)
	if s == "" {
		return ""
	}
	s = stripControl(s)

	var b strings.Builder
	b.Grow(len(s))
	z := html.NewTokenizer(strings.NewReader(s))

	// While skipTag is set, everything up to its matching close tag is dropped.
	skipTag := ""
	skipDepth := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		if skipTag != "" {
			switch tt {
			case html.StartTagToken:
				if name, _ := z.TagName(); string(name) == skipTag {
					skipDepth++
				}
			case html.EndTagToken:
				if name, _ := z.TagName(); string(name) == skipTag {
					skipDepth--
					if skipDepth == 0 {
						skipTag = ""
					}
				}
			}
			continue
		}

		switch tt {
		case html.TextToken:
			b.WriteString(html.EscapeString(string(z.Text())))

		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			raw := string(z.Raw())
			tok := z.Token()
			name := tok.Data
			switch {
			case dropWithContent[name]:
				if tt == html.StartTagToken {
					skipTag = name
					skipDepth = 1
				}
			case dropTagOnly[name]:
				// removed, surrounding text kept
			case allowedTags[name]:
				writeTag(&b, tok, tt)
			default:
				// unknown tag renders as literal text; escaping the full
				// entity set keeps re-sanitization a no-op
				b.WriteString(html.EscapeString(raw))
			}

		case html.CommentToken, html.DoctypeToken:
			// dropped
		}
	}

	return b.String()
}

func writeTag(b *strings.Builder, tok html.Token, tt html.TokenType) {
	if tt == html.EndTagToken {
		b.WriteString("</")
		b.WriteString(tok.Data)
		b.WriteString(">")
		return
	}
	b.WriteString("<")
	b.WriteString(tok.Data)
	for _, attr := range tok.Attr {
		key := strings.ToLower(attr.Key)
		if !allowedAttrs[key] {
			continue
		}
		val := attr.Val
		if (key == "href" || key == "src") && unsafeScheme(val) {
			val = "#"
		}
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(val))
		b.WriteString(`"`)
	}
	b.WriteString(">")
}

func unsafeScheme(val string) bool {
	v := strings.ToLower(strings.TrimSpace(val))
	return strings.HasPrefix(v, "javascript:") || strings.HasPrefix(v, "data:")
}
