package cli

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/plan"
)

const storePkg = "accessor-generator/store"

func newTestRunner() (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, logs bytes.Buffer

	return NewRunner(&stdout, log.New(&logs, "", 0)), &stdout, &logs
}

func TestRunner_PlanJSON(t *testing.T) {
	runner, stdout, _ := newTestRunner()

	cfg := &Config{Command: CommandPlan, Pkg: storePkg, Types: []string{"Pet"}, Parallelism: 4, Format: FormatJSON}
	require.NoError(t, runner.Run(context.Background(), cfg))

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"version\": \"1\""), out)
	assert.Contains(t, out, `"record": "Pet"`)
	assert.Contains(t, out, `"name": "identification"`)
	assert.Contains(t, out, `"go_name": "Identification"`)
	assert.Contains(t, out, `"body": "swap-and-return-previous"`)
	assert.Equal(t, 14, strings.Count(out, `"field_index"`))
}

func TestRunner_PlanTextWithConfigFile(t *testing.T) {
	runner, stdout, logs := newTestRunner()

	cfg := &Config{
		Command:     CommandPlan,
		Pkg:         storePkg,
		Types:       []string{"Account"},
		ConfigFile:  "testdata/accessors.yaml",
		Parallelism: 1,
		Format:      FormatText,
		Verbose:     true,
	}
	require.NoError(t, runner.Run(context.Background(), cfg))

	assert.Contains(t, stdout.String(), "=== Account (")
	assert.Contains(t, stdout.String(), "Account.email -> with_email (withEmail) [")
	assert.Contains(t, logs.String(), "warning: Account.Audit: [embedded_field]")
}

func TestRunner_PlanDiscoversRecords(t *testing.T) {
	runner, stdout, _ := newTestRunner()

	cfg := &Config{Command: CommandPlan, Pkg: "accessor-generator/warehouse", Parallelism: 2, Format: FormatText}
	require.NoError(t, runner.Run(context.Background(), cfg))

	out := stdout.String()
	assert.Contains(t, out, "=== Shipment (")
	assert.Contains(t, out, "Shipment.address -> address (Address) [")
	assert.Contains(t, out, "Shipment.id -> tracking_id (TrackingID) [")
	assert.NotContains(t, out, "=== Address")
}

func TestRunner_GenAndCheck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pet_accessors.go")
	runner, _, logs := newTestRunner()

	cfg := &Config{Command: CommandCheck, Pkg: storePkg, Types: []string{"Pet"}, Output: out, Parallelism: 2, Format: FormatJSON}

	err := runner.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStale)

	cfg.Command = CommandGen
	cfg.Verbose = true
	require.NoError(t, runner.Run(context.Background(), cfg))
	assert.Contains(t, logs.String(), "wrote "+out)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "func (p *Pet) SetTags(v ...string) []string {")

	cfg.Command = CommandCheck
	assert.NoError(t, runner.Run(context.Background(), cfg))
}

func TestRunner_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
		msg     string
	}{
		{
			name: "unknown type",
			cfg:  &Config{Command: CommandPlan, Pkg: storePkg, Types: []string{"Pett"}, Format: FormatJSON},
			msg:  `did you mean "Pet"?`,
		},
		{
			name:    "rejected directive",
			cfg:     &Config{Command: CommandPlan, Pkg: storePkg, Types: []string{"Broken"}, Format: FormatJSON},
			wantErr: plan.ErrStructuralDirective,
			msg:     "Broken.level",
		},
		{
			name:    "record without fields",
			cfg:     &Config{Command: CommandPlan, Pkg: storePkg, Types: []string{"Empty"}, Format: FormatJSON},
			wantErr: plan.ErrUnclassifiableRecord,
		},
		{
			name: "missing config file",
			cfg:  &Config{Command: CommandPlan, Pkg: storePkg, Types: []string{"Pet"}, ConfigFile: "testdata/missing.yaml", Format: FormatJSON},
			msg:  "missing.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, _, _ := newTestRunner()

			err := runner.Run(context.Background(), tt.cfg)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestDiscoverRecords(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages(storePkg)
	require.NoError(t, err)

	assert.Equal(t, []string{"Account", "Broken", "Pet"}, discoverRecords(graph))
}
