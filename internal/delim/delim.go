// Package delim locates closing delimiters at matching nesting depth.
//
// It is the only nesting-aware scanner in the module. The embed resolver uses
// it to find the end of an embed token, and the inline Markdown formatter uses
// it to find the closing bracket and parenthesis of links and images.
package delim

// NotFound is returned by Find when no delimiter matches.
const NotFound = -1

// layers is the nesting stack. Quotes toggle, brackets push and only pop on
// their own closer.
type layers []byte

func (l layers) top() byte {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1]
}

func (l *layers) pop() {
	*l = (*l)[:len(*l)-1]
}

func (l *layers) update(c byte) {
	switch c {
	case '(', '<', '[':
		*l = append(*l, c)
	case '"', '\'':
		if l.top() == c {
			l.pop()
		} else {
			*l = append(*l, c)
		}
	case ')':
		if l.top() == '(' {
			l.pop()
		}
	case ']':
		if l.top() == '[' {
			l.pop()
		}
	case '>':
		if l.top() == '<' {
			l.pop()
		}
	}
}

// Find returns the byte index of the first target in s that sits at nesting
// depth zero, or NotFound.
//
// When testFirst is true the target is checked before the character updates
// the stack; otherwise the stack is updated first, so an opener that is also
// the target ('<' searching for '>') is matched by its own closer. Optional
// seed characters pre-populate the stack as pending openers.
func Find(s string, target byte, testFirst bool, seed ...byte) int {
	stack := make(layers, 0, 8)
	stack = append(stack, seed...)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if testFirst {
			if c == target && len(stack) == 0 {
				return i
			}
			stack.update(c)
			continue
		}
		stack.update(c)
		if c == target && len(stack) == 0 {
			return i
		}
	}
	return NotFound
}
