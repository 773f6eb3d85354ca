package selector

import (
	"errors"
	"fmt"
)

// Pause prints msg and waits for a line. A closed input does not block.
func (p *Prompter) Pause(msg string) error {
	_, err := p.readLine(msg)
	if errors.Is(err, ErrNoInput) {
		fmt.Fprintln(p.out)
		return nil
	}
	return err
}
