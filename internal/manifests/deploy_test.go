package manifests

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaheen/xaheen/internal/logging"
)

type recordedCall struct {
	stdin string
	name  string
	args  []string
}

// fakeRunner records invocations and fails commands listed in failOn.
type fakeRunner struct {
	calls  []recordedCall
	failOn map[string]bool
}

func (f *fakeRunner) Run(ctx context.Context, stdin, name string, args ...string) (string, string, error) {
	f.calls = append(f.calls, recordedCall{stdin: stdin, name: name, args: args})
	if f.failOn[name] {
		return "", "simulated failure", fmt.Errorf("exit status 1")
	}
	return "ok", "", nil
}

func TestDeployerApply(t *testing.T) {
	runner := &fakeRunner{}
	deployer := NewDeployer(runner, logging.NewLogger(nil))

	err := deployer.Apply(context.Background(), "staging", "kind: Deployment")
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "kubectl", call.name)
	assert.Equal(t, []string{"apply", "--namespace", "staging", "-f", "-"}, call.args)
	assert.Equal(t, "kind: Deployment", call.stdin)
}

func TestDeployerApplyFailure(t *testing.T) {
	runner := &fakeRunner{failOn: map[string]bool{"kubectl": true}}
	deployer := NewDeployer(runner, logging.NewLogger(nil))

	err := deployer.Apply(context.Background(), "staging", "kind: Deployment")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated failure")
}

func TestDeployerRolloutStatus(t *testing.T) {
	runner := &fakeRunner{}
	deployer := NewDeployer(runner, logging.NewLogger(nil))

	err := deployer.RolloutStatus(context.Background(), "prod", "shop")
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "kubectl", call.name)
	assert.Equal(t, []string{"rollout", "status", "deployment/shop", "--namespace", "prod"}, call.args)
	assert.Empty(t, call.stdin)
}

func TestDeployerHelmUpgrade(t *testing.T) {
	runner := &fakeRunner{}
	deployer := NewDeployer(runner, logging.NewLogger(nil))

	err := deployer.HelmUpgrade(context.Background(), "prod", "shop", "./charts/shop")
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "helm", call.name)
	assert.Equal(t, []string{
		"upgrade", "--install", "--atomic", "--wait",
		"--namespace", "prod", "shop", "./charts/shop",
	}, call.args)
}
