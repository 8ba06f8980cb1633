package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// InteractiveApprover asks the user to type the base name of the directory
// being removed.
type InteractiveApprover struct {
	input  io.Reader
	output io.Writer
}

// NewInteractiveApprover creates an InteractiveApprover reading answers from
// input and writing prompts to output.
func NewInteractiveApprover(input io.Reader, output io.Writer) *InteractiveApprover {
	return &InteractiveApprover{input: input, output: output}
}

type answer struct {
	text string
	err  error
}

// RequestApproval approves only when the typed line equals the base name of
// target. A final line without a newline still counts as an answer.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	name := filepath.Base(target)
	fmt.Fprintf(a.output, "\nWARNING: %s and everything in it will be removed\n", target)
	fmt.Fprintf(a.output, "Type '%s' to confirm: ", name)

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case ans := <-a.readLine():
		if ans.err != nil {
			return false, fmt.Errorf("failed to read confirmation: %w", ans.err)
		}
		if ans.text != name {
			fmt.Fprintf(a.output, "'%s' is not '%s', nothing was removed (cancelled)\n", ans.text, name)
			return false, nil
		}
		fmt.Fprintln(a.output, "Confirmed.")
		return true, nil
	}
}

// readLine reads one line in the background so the caller can stop waiting
// when its context ends. The channel is buffered and never blocks the reader.
func (a *InteractiveApprover) readLine() <-chan answer {
	ch := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(a.input).ReadString('\n')
		if err != nil && line == "" {
			ch <- answer{err: err}
			return
		}
		ch <- answer{text: strings.TrimSpace(line)}
	}()
	return ch
}

var _ Approver = (*InteractiveApprover)(nil)
