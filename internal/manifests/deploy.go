package manifests

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/xaheen/xaheen/internal/errors"
	"github.com/xaheen/xaheen/internal/logging"
)

// Runner executes an external binary with optional stdin and reports its
// output and exit status. kubectl and helm are collaborators reached
// through this interface; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, stdin, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, stdin, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Deployer applies rendered manifests to a cluster through kubectl and
// helm. It carries no cluster state of its own.
type Deployer struct {
	runner Runner
	logger logging.Logger
}

// NewDeployer creates a deployer using the given runner.
func NewDeployer(runner Runner, logger logging.Logger) *Deployer {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Deployer{
		runner: runner,
		logger: logger.WithComponent("deploy"),
	}
}

// Apply pipes a rendered manifest stream through kubectl apply.
func (d *Deployer) Apply(ctx context.Context, namespace, manifest string) error {
	stdout, stderr, err := d.runner.Run(ctx, manifest, "kubectl",
		"apply", "--namespace", namespace, "-f", "-")
	if err != nil {
		return errors.NewIOError("kubectl apply failed: "+strings.TrimSpace(stderr), err)
	}

	d.logger.Info(ctx, "manifests applied", "namespace", namespace, "output", strings.TrimSpace(stdout))
	return nil
}

// RolloutStatus blocks until the deployment rollout finishes or kubectl
// gives up.
func (d *Deployer) RolloutStatus(ctx context.Context, namespace, name string) error {
	_, stderr, err := d.runner.Run(ctx, "", "kubectl",
		"rollout", "status", "deployment/"+name, "--namespace", namespace)
	if err != nil {
		return errors.NewIOError("rollout status failed: "+strings.TrimSpace(stderr), err)
	}

	d.logger.Info(ctx, "rollout complete", "deployment", name, "namespace", namespace)
	return nil
}

// HelmUpgrade installs or upgrades a chart atomically so a failed release
// rolls back on its own.
func (d *Deployer) HelmUpgrade(ctx context.Context, namespace, release, chartDir string) error {
	_, stderr, err := d.runner.Run(ctx, "", "helm",
		"upgrade", "--install", "--atomic", "--wait",
		"--namespace", namespace, release, chartDir)
	if err != nil {
		return errors.NewIOError("helm upgrade failed: "+strings.TrimSpace(stderr), err)
	}

	d.logger.Info(ctx, "helm release upgraded", "release", release, "namespace", namespace)
	return nil
}
