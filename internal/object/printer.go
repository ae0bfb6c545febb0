package object

import "io"

// Print renders v in its canonical textual form.
func Print(v Value) string {
	if v == nil {
		return ""
	}
	return v.Inspect()
}

// Println writes the canonical form of v followed by a newline.
func Println(w io.Writer, v Value) error {
	_, err := io.WriteString(w, Print(v)+"\n")
	return err
}
