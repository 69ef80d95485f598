package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xaheen/xaheen/internal/manifests"
	"github.com/xaheen/xaheen/internal/naming"
)

var (
	deployNamespace string
	deployUseHelm   bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy <name>",
	Short: "Deploy generated manifests through kubectl or helm",
	Long: `Deploy renders the Kubernetes manifests for an application and hands
them to kubectl apply, waiting for the rollout to finish. With --helm the
previously generated chart is released via helm upgrade --install
--atomic instead. Orchestration is fully delegated to the external
binaries; a failed invocation is terminal for the command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		cfg := resolveConfig(ctx, logger)
		name := naming.ToKebabCase(args[0])
		spec := manifests.DefaultSpec(name)
		spec.Namespace = deployNamespace

		deployer := manifests.NewDeployer(nil, logger)

		if deployUseHelm {
			chartDir := filepath.Join(resolvePath(cfg.Generate.OutputDir), "charts", name)
			if err := deployer.HelmUpgrade(ctx, deployNamespace, name, chartDir); err != nil {
				logger.Error(ctx, err, "helm deploy failed", "release", name)
				return err
			}
			return nil
		}

		manifest, err := manifests.RenderKubernetes(spec)
		if err != nil {
			return err
		}

		if err := deployer.Apply(ctx, deployNamespace, manifest); err != nil {
			logger.Error(ctx, err, "deploy failed", "app", name)
			return err
		}

		if err := deployer.RolloutStatus(ctx, deployNamespace, name); err != nil {
			logger.Error(ctx, err, "rollout failed", "app", name)
			return err
		}

		return nil
	},
}

func init() {
	deployCmd.Flags().StringVarP(&deployNamespace, "namespace", "n", "default", "target namespace")
	deployCmd.Flags().BoolVar(&deployUseHelm, "helm", false, "deploy via helm upgrade --install")

	rootCmd.AddCommand(deployCmd)
}
