package ui

import (
	"context"
	"fmt"
	"io"
)

// ForcedApprover approves every request, noting the decision on its output.
type ForcedApprover struct {
	output io.Writer
}

// NewForcedApprover creates a ForcedApprover writing its notice to output.
func NewForcedApprover(output io.Writer) *ForcedApprover {
	return &ForcedApprover{output: output}
}

func (a *ForcedApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(a.output, "Removing %s and all of its contents (--force)\n", target)
	return true, nil
}

// DenyingApprover refuses every request, explaining how to proceed.
type DenyingApprover struct {
	output io.Writer
}

// NewDenyingApprover creates a DenyingApprover writing its reason to output.
func NewDenyingApprover(output io.Writer) *DenyingApprover {
	return &DenyingApprover{output: output}
}

func (a *DenyingApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	fmt.Fprintf(a.output, "Refusing to remove directory %s without a terminal; pass --force to confirm\n", target)
	return false, nil
}

var (
	_ Approver = (*ForcedApprover)(nil)
	_ Approver = (*DenyingApprover)(nil)
)
