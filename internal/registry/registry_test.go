package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/mendgrid/internal/config"
	"github.com/vk/mendgrid/internal/repair"
	"github.com/zclconf/go-cty/cty"
)

type echoInput struct {
	Source string `mend:"source"`
}

func newEchoRunner(seen *[]string) *RegisteredRunner {
	return &RegisteredRunner{
		NewInput: func() any { return new(echoInput) },
		Fn: func(ctx context.Context, input any, opts repair.Options) (*repair.Result, error) {
			in := input.(*echoInput)
			*seen = append(*seen, in.Source)
			if in.Source == "boom" {
				return nil, errors.New("boom")
			}
			return &repair.Result{Op: "echo", Source: in.Source, DryRun: opts.DryRun}, nil
		},
	}
}

func TestRegistry_RegisterAndRun(t *testing.T) {
	var seen []string
	r := New()
	r.RegisterRunner("echo", newEchoRunner(&seen))

	assert.True(t, r.Has("echo"))
	assert.False(t, r.Has("restore"))
	assert.Equal(t, []string{"echo"}, r.Types())

	step := &config.Step{
		Type:      "echo",
		Name:      "a",
		Arguments: map[string]cty.Value{"source": cty.StringVal("in.txt")},
	}
	res, err := r.Run(context.Background(), step, repair.Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "in.txt", res.Source)
	assert.True(t, res.DryRun)
	assert.Equal(t, []string{"in.txt"}, seen)
}

func TestRegistry_RunErrors(t *testing.T) {
	var seen []string
	r := New()
	r.RegisterRunner("echo", newEchoRunner(&seen))
	ctx := context.Background()

	_, err := r.Run(ctx, &config.Step{Type: "nope", Name: "a"}, repair.Options{})
	assert.ErrorContains(t, err, `no handler registered for step type "nope"`)

	_, err = r.Run(ctx, &config.Step{Type: "echo", Name: "a"}, repair.Options{})
	assert.ErrorContains(t, err, `invalid arguments for step "echo.a"`)
	assert.Empty(t, seen, "handler must not run when arguments are invalid")

	_, err = r.Run(ctx, &config.Step{Type: "echo", Name: "a", Arguments: map[string]cty.Value{"source": cty.StringVal("boom")}}, repair.Options{})
	assert.EqualError(t, err, "boom")
}

func TestRegistry_RegisterPanics(t *testing.T) {
	var seen []string
	r := New()
	r.RegisterRunner("echo", newEchoRunner(&seen))

	assert.Panics(t, func() { r.RegisterRunner("echo", newEchoRunner(&seen)) })
	assert.Panics(t, func() { r.RegisterRunner("empty", &RegisteredRunner{}) })
}
