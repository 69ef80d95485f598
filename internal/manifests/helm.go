package manifests

import (
	"gopkg.in/yaml.v3"

	"github.com/xaheen/xaheen/internal/errors"
)

// File is one rendered chart file. Files are returned in a fixed order so
// generation output is deterministic.
type File struct {
	Name    string
	Content string
}

type chartYAML struct {
	APIVersion  string `yaml:"apiVersion"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Version     string `yaml:"version"`
	AppVersion  string `yaml:"appVersion"`
}

type valuesYAML struct {
	ReplicaCount int             `yaml:"replicaCount"`
	Image        valuesImage     `yaml:"image"`
	Service      valuesService   `yaml:"service"`
	Ingress      valuesIngress   `yaml:"ingress"`
	Autoscaling  valuesAutoscale `yaml:"autoscaling"`
	Strategy     rollingUpdate   `yaml:"rollingUpdate"`
}

type valuesImage struct {
	Repository string `yaml:"repository"`
	Tag        string `yaml:"tag"`
	PullPolicy string `yaml:"pullPolicy"`
}

type valuesService struct {
	Type string `yaml:"type"`
	Port int    `yaml:"port"`
}

type valuesIngress struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
}

type valuesAutoscale struct {
	Enabled     bool `yaml:"enabled"`
	MinReplicas int  `yaml:"minReplicas"`
	MaxReplicas int  `yaml:"maxReplicas"`
	TargetCPU   int  `yaml:"targetCPUUtilizationPercentage"`
}

// RenderHelmChart builds Chart.yaml, values.yaml and the templated
// manifest for a spec.
func RenderHelmChart(spec Spec) ([]File, error) {
	chart := chartYAML{
		APIVersion:  "v2",
		Name:        spec.Name,
		Description: "Helm chart for " + spec.Name,
		Type:        "application",
		Version:     "0.1.0",
		AppVersion:  spec.Tag,
	}

	values := valuesYAML{
		ReplicaCount: spec.Replicas,
		Image: valuesImage{
			Repository: spec.Image,
			Tag:        spec.Tag,
			PullPolicy: "IfNotPresent",
		},
		Service: valuesService{Type: "ClusterIP", Port: 80},
		Ingress: valuesIngress{Enabled: true, Host: spec.Host},
		Autoscaling: valuesAutoscale{
			Enabled:     true,
			MinReplicas: spec.MinReplicas,
			MaxReplicas: spec.MaxReplicas,
			TargetCPU:   spec.TargetCPU,
		},
		Strategy: rollingUpdate{
			MaxSurge:       spec.MaxSurge,
			MaxUnavailable: spec.MaxUnavailable,
		},
	}

	chartRaw, err := yaml.Marshal(chart)
	if err != nil {
		return nil, errors.NewInternalError("marshaling Chart.yaml", err)
	}

	valuesRaw, err := yaml.Marshal(values)
	if err != nil {
		return nil, errors.NewInternalError("marshaling values.yaml", err)
	}

	manifest, err := RenderKubernetes(spec)
	if err != nil {
		return nil, err
	}

	return []File{
		{Name: "Chart.yaml", Content: string(chartRaw)},
		{Name: "values.yaml", Content: string(valuesRaw)},
		{Name: "templates/all.yaml", Content: manifest},
	}, nil
}
