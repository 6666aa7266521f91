package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dialog asks yes/no questions on a terminal. It implements form.Confirmer.
type Dialog struct {
	in      *bufio.Reader
	out     io.Writer
	styles  Styles
	assumed bool
}

func NewDialog(in io.Reader, out io.Writer, styles Styles) *Dialog {
	return &Dialog{in: bufio.NewReader(in), out: out, styles: styles}
}

// AssumeYes makes every Confirm answer yes without prompting.
func (d *Dialog) AssumeYes() *Dialog {
	d.assumed = true
	return d
}

func (d *Dialog) Confirm(message string) (bool, error) {
	if d.assumed {
		return true, nil
	}
	fmt.Fprint(d.out, d.styles.Info.Render(message)+" [y/N]: ")
	answer, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Prompt reads one line, used for values not given as flags.
func (d *Dialog) Prompt(label string) (string, error) {
	fmt.Fprint(d.out, label+": ")
	answer, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
