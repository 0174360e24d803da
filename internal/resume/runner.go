package resume

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
)

// Runner lets tests stub the external extraction command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, nil, fmt.Errorf("%s not found in PATH (install poppler-utils): %w", name, err)
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	if err != nil {
		log.Printf("[RESUME] %s failed: %v", name, err)
	}

	return out.Bytes(), errb.Bytes(), err
}
