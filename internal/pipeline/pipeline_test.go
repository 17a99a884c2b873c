// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/venture-advisor/internal/console"
	"github.com/pdiddy/venture-advisor/internal/logging"
)

func scriptedConsole(lines ...string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return console.NewWith(in, &out), &out
}

func noopStep(name string, ran *[]string) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context) error {
			*ran = append(*ran, name)
			return nil
		},
	}
}

func TestRunAllSteps(t *testing.T) {
	var ran []string
	con, out := scriptedConsole("", "")

	r := New("business development", con, logging.Nop(),
		noopStep("identify markets", &ran),
		noopStep("analyze markets", &ran),
		noopStep("select market", &ran),
	)
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []string{"identify markets", "analyze markets", "select market"}, ran)
	assert.Contains(t, out.String(), "business development finished.")
	assert.Contains(t, out.String(), "continue to analyze markets")
}

func TestRunStopsWhenOperatorDeclines(t *testing.T) {
	var ran []string
	con, out := scriptedConsole("n")

	r := New("business development", con, logging.Nop(),
		noopStep("identify markets", &ran),
		noopStep("analyze markets", &ran),
	)
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []string{"identify markets"}, ran)
	assert.Contains(t, out.String(), "identify markets")
	assert.Contains(t, out.String(), "Run the pipeline again to resume from here.")
}

func TestRunAbortsOnStepError(t *testing.T) {
	var ran []string
	boom := errors.New("backend unavailable")
	con, _ := scriptedConsole("")

	r := New("technology development", con, logging.Nop(),
		noopStep("intake", &ran),
		Step{Name: "generate steps", Run: func(ctx context.Context) error { return boom }},
		noopStep("research", &ran),
	)
	err := r.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"intake"}, ran)
}

func TestRunSingleStepNoPrompt(t *testing.T) {
	var ran []string
	// No scripted input. A single step pipeline must not prompt.
	con := console.NewWith(strings.NewReader(""), &bytes.Buffer{})

	r := New("conversation", con, logging.Nop(), noopStep("chat", &ran))
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []string{"chat"}, ran)
}
