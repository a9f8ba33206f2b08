package typo

import "strings"

var upsideDown = [...]string{
	NoBase: " ",
	A:      "∀",
	C:      "Ↄ",
	G:      "⅁",
	T:      "⊥",
}

// Picture draws a workspace as three rows: the complement strand with its
// letters turned upside down, the primary strand, and a caret under the cursor.
func Picture(pairs []BasePair, cursor int) string {
	var complement, primary strings.Builder
	for _, pair := range pairs {
		complement.WriteString(upsideDown[pair.Complement])
		complement.WriteByte(' ')
		primary.WriteString(pair.Primary.String())
		primary.WriteByte(' ')
	}
	rows := []string{
		strings.TrimRight(complement.String(), " "),
		strings.TrimRight(primary.String(), " "),
	}
	if cursor >= 0 && cursor < len(pairs) {
		rows = append(rows, strings.Repeat(" ", cursor*2)+"^")
	}
	return strings.Join(rows, "\n")
}

func (m *Machine) Picture() string {
	return Picture(m.Pairs, m.Cursor)
}
