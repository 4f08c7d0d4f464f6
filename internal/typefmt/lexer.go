package typefmt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenString
	tokenTemplate
	tokenPunct
	tokenComment
)

type token struct {
	kind tokenKind
	text string
	// space is set when whitespace preceded the token in the input.
	space bool
}

var multiCharPunct = []string{"=>", "...", "-?", "+?"}

// lex splits type syntax into tokens, remembering where the input had
// whitespace so canonical spacing survives reformatting.
func lex(src string) ([]token, error) {
	var tokens []token

	space := false

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])

		switch {
		case unicode.IsSpace(r):
			space = true
			i += size

			continue
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return nil, fmt.Errorf("unterminated comment at offset %d", i)
			}

			tokens = append(tokens, token{kind: tokenComment, text: src[i : i+end+4], space: space})
			i += end + 4
		case strings.HasPrefix(src[i:], "//"):
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src) - i
			}

			tokens = append(tokens, token{kind: tokenComment, text: src[i : i+end], space: space})
			i += end
		case r == '"' || r == '\'':
			end, err := scanQuoted(src, i)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, token{kind: tokenString, text: src[i:end], space: space})
			i = end
		case r == '`':
			end, err := scanTemplate(src, i)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, token{kind: tokenTemplate, text: src[i:end], space: space})
			i = end
		case isWordRune(r):
			end := i
			for end < len(src) {
				wr, wsize := utf8.DecodeRuneInString(src[end:])
				if !isWordRune(wr) && !(wr == '.' && isNumberStart(src[i:end])) {
					break
				}

				end += wsize
			}

			tokens = append(tokens, token{kind: tokenWord, text: src[i:end], space: space})
			i = end
		default:
			text := string(r)

			for _, punct := range multiCharPunct {
				if strings.HasPrefix(src[i:], punct) {
					text = punct
					break
				}
			}

			tokens = append(tokens, token{kind: tokenPunct, text: text, space: space})
			i += len(text)
		}

		space = false
	}

	return tokens, nil
}

func isWordRune(r rune) bool {
	return r == '_' || r == '$' || r == '#' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isNumberStart(word string) bool {
	return word != "" && word[0] >= '0' && word[0] <= '9'
}

func scanQuoted(src string, start int) (int, error) {
	quote := src[start]

	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("unterminated string at offset %d", start)
}

// scanTemplate returns the end of a template literal type, skipping over
// ${...} placeholders that may themselves contain templates.
func scanTemplate(src string, start int) (int, error) {
	for i := start + 1; i < len(src); i++ {
		switch {
		case src[i] == '\\':
			i++
		case src[i] == '`':
			return i + 1, nil
		case strings.HasPrefix(src[i:], "${"):
			depth := 1

			for i += 2; i < len(src) && depth > 0; i++ {
				switch src[i] {
				case '{':
					depth++
				case '}':
					depth--
				case '`':
					end, err := scanTemplate(src, i)
					if err != nil {
						return 0, err
					}

					i = end - 1
				}
			}

			i--
		}
	}

	return 0, fmt.Errorf("unterminated template literal at offset %d", start)
}
