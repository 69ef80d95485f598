// Package manifests builds Kubernetes and Helm deployment artifacts for
// generated applications. Manifests are assembled as typed structs and
// marshaled with yaml.v3; cluster orchestration itself stays delegated to
// the kubectl and helm binaries through the Runner interface.
package manifests

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xaheen/xaheen/internal/errors"
)

// Spec describes the deployable application the manifests are built for.
type Spec struct {
	Name           string
	Namespace      string
	Image          string
	Tag            string
	Replicas       int
	Port           int
	Host           string
	MaxSurge       string
	MaxUnavailable string
	MinReplicas    int
	MaxReplicas    int
	TargetCPU      int
}

// DefaultSpec returns a zero-downtime-ready spec for an application name:
// rolling updates that always keep full capacity, plus readiness and
// liveness probes so traffic only reaches live pods.
func DefaultSpec(name string) Spec {
	return Spec{
		Name:           name,
		Namespace:      "default",
		Image:          name,
		Tag:            "latest",
		Replicas:       2,
		Port:           3000,
		Host:           name + ".example.com",
		MaxSurge:       "25%",
		MaxUnavailable: "0",
		MinReplicas:    2,
		MaxReplicas:    6,
		TargetCPU:      70,
	}
}

type metadata struct {
	Name      string            `yaml:"name"`
	Namespace string            `yaml:"namespace,omitempty"`
	Labels    map[string]string `yaml:"labels,omitempty"`
}

type deployment struct {
	APIVersion string         `yaml:"apiVersion"`
	Kind       string         `yaml:"kind"`
	Metadata   metadata       `yaml:"metadata"`
	Spec       deploymentSpec `yaml:"spec"`
}

type deploymentSpec struct {
	Replicas int             `yaml:"replicas"`
	Strategy updateStrategy  `yaml:"strategy"`
	Selector labelSelector   `yaml:"selector"`
	Template podTemplateSpec `yaml:"template"`
}

type updateStrategy struct {
	Type          string        `yaml:"type"`
	RollingUpdate rollingUpdate `yaml:"rollingUpdate"`
}

type rollingUpdate struct {
	MaxSurge       string `yaml:"maxSurge"`
	MaxUnavailable string `yaml:"maxUnavailable"`
}

type labelSelector struct {
	MatchLabels map[string]string `yaml:"matchLabels"`
}

type podTemplateSpec struct {
	Metadata metadata `yaml:"metadata"`
	Spec     podSpec  `yaml:"spec"`
}

type podSpec struct {
	Containers []container `yaml:"containers"`
}

type container struct {
	Name           string          `yaml:"name"`
	Image          string          `yaml:"image"`
	Ports          []containerPort `yaml:"ports"`
	ReadinessProbe *probe          `yaml:"readinessProbe,omitempty"`
	LivenessProbe  *probe          `yaml:"livenessProbe,omitempty"`
}

type containerPort struct {
	ContainerPort int `yaml:"containerPort"`
}

type probe struct {
	HTTPGet             httpGetAction `yaml:"httpGet"`
	InitialDelaySeconds int           `yaml:"initialDelaySeconds"`
	PeriodSeconds       int           `yaml:"periodSeconds"`
}

type httpGetAction struct {
	Path string `yaml:"path"`
	Port int    `yaml:"port"`
}

type service struct {
	APIVersion string      `yaml:"apiVersion"`
	Kind       string      `yaml:"kind"`
	Metadata   metadata    `yaml:"metadata"`
	Spec       serviceSpec `yaml:"spec"`
}

type serviceSpec struct {
	Selector map[string]string `yaml:"selector"`
	Ports    []servicePort     `yaml:"ports"`
}

type servicePort struct {
	Port       int `yaml:"port"`
	TargetPort int `yaml:"targetPort"`
}

type ingress struct {
	APIVersion string      `yaml:"apiVersion"`
	Kind       string      `yaml:"kind"`
	Metadata   metadata    `yaml:"metadata"`
	Spec       ingressSpec `yaml:"spec"`
}

type ingressSpec struct {
	Rules []ingressRule `yaml:"rules"`
}

type ingressRule struct {
	Host string          `yaml:"host"`
	HTTP ingressRuleHTTP `yaml:"http"`
}

type ingressRuleHTTP struct {
	Paths []ingressPath `yaml:"paths"`
}

type ingressPath struct {
	Path     string         `yaml:"path"`
	PathType string         `yaml:"pathType"`
	Backend  ingressBackend `yaml:"backend"`
}

type ingressBackend struct {
	Service ingressBackendService `yaml:"service"`
}

type ingressBackendService struct {
	Name string             `yaml:"name"`
	Port ingressBackendPort `yaml:"port"`
}

type ingressBackendPort struct {
	Number int `yaml:"number"`
}

type autoscaler struct {
	APIVersion string         `yaml:"apiVersion"`
	Kind       string         `yaml:"kind"`
	Metadata   metadata       `yaml:"metadata"`
	Spec       autoscalerSpec `yaml:"spec"`
}

type autoscalerSpec struct {
	ScaleTargetRef scaleTargetRef `yaml:"scaleTargetRef"`
	MinReplicas    int            `yaml:"minReplicas"`
	MaxReplicas    int            `yaml:"maxReplicas"`
	Metrics        []metricSpec   `yaml:"metrics"`
}

type scaleTargetRef struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
	Name       string `yaml:"name"`
}

type metricSpec struct {
	Type     string         `yaml:"type"`
	Resource resourceMetric `yaml:"resource"`
}

type resourceMetric struct {
	Name   string       `yaml:"name"`
	Target metricTarget `yaml:"target"`
}

type metricTarget struct {
	Type               string `yaml:"type"`
	AverageUtilization int    `yaml:"averageUtilization"`
}

// RenderKubernetes builds the Deployment, Service, Ingress and
// HorizontalPodAutoscaler manifests for a spec as one multi-document YAML
// stream.
func RenderKubernetes(spec Spec) (string, error) {
	labels := map[string]string{"app": spec.Name}
	meta := metadata{Name: spec.Name, Namespace: spec.Namespace, Labels: labels}

	docs := []interface{}{
		deployment{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
			Metadata:   meta,
			Spec: deploymentSpec{
				Replicas: spec.Replicas,
				Strategy: updateStrategy{
					Type: "RollingUpdate",
					RollingUpdate: rollingUpdate{
						MaxSurge:       spec.MaxSurge,
						MaxUnavailable: spec.MaxUnavailable,
					},
				},
				Selector: labelSelector{MatchLabels: labels},
				Template: podTemplateSpec{
					Metadata: metadata{Labels: labels},
					Spec: podSpec{
						Containers: []container{{
							Name:  spec.Name,
							Image: spec.Image + ":" + spec.Tag,
							Ports: []containerPort{{ContainerPort: spec.Port}},
							ReadinessProbe: &probe{
								HTTPGet:             httpGetAction{Path: "/healthz", Port: spec.Port},
								InitialDelaySeconds: 5,
								PeriodSeconds:       10,
							},
							LivenessProbe: &probe{
								HTTPGet:             httpGetAction{Path: "/healthz", Port: spec.Port},
								InitialDelaySeconds: 15,
								PeriodSeconds:       20,
							},
						}},
					},
				},
			},
		},
		service{
			APIVersion: "v1",
			Kind:       "Service",
			Metadata:   meta,
			Spec: serviceSpec{
				Selector: labels,
				Ports:    []servicePort{{Port: 80, TargetPort: spec.Port}},
			},
		},
		ingress{
			APIVersion: "networking.k8s.io/v1",
			Kind:       "Ingress",
			Metadata:   meta,
			Spec: ingressSpec{
				Rules: []ingressRule{{
					Host: spec.Host,
					HTTP: ingressRuleHTTP{
						Paths: []ingressPath{{
							Path:     "/",
							PathType: "Prefix",
							Backend: ingressBackend{
								Service: ingressBackendService{
									Name: spec.Name,
									Port: ingressBackendPort{Number: 80},
								},
							},
						}},
					},
				}},
			},
		},
		autoscaler{
			APIVersion: "autoscaling/v2",
			Kind:       "HorizontalPodAutoscaler",
			Metadata:   meta,
			Spec: autoscalerSpec{
				ScaleTargetRef: scaleTargetRef{
					APIVersion: "apps/v1",
					Kind:       "Deployment",
					Name:       spec.Name,
				},
				MinReplicas: spec.MinReplicas,
				MaxReplicas: spec.MaxReplicas,
				Metrics: []metricSpec{{
					Type: "Resource",
					Resource: resourceMetric{
						Name: "cpu",
						Target: metricTarget{
							Type:               "Utilization",
							AverageUtilization: spec.TargetCPU,
						},
					},
				}},
			},
		},
	}

	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("---\n")
		}
		raw, err := yaml.Marshal(doc)
		if err != nil {
			return "", errors.NewInternalError("marshaling manifest", err)
		}
		b.Write(raw)
	}

	return b.String(), nil
}
