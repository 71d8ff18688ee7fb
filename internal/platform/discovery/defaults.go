// Package discovery centralizes internal service-discovery conventions.
package discovery

import (
	"strconv"
	"strings"
)

const (
	// ServiceAssignment is the assignment gRPC service identity.
	ServiceAssignment = "assignment"
	// ServiceCourse is the course roster gRPC service identity.
	ServiceCourse = "course"
	// ServiceAnalysisBroker is the analysis broker gRPC service identity.
	ServiceAnalysisBroker = "analysis-broker"
	// ServiceWorker is the relay worker gRPC service identity.
	ServiceWorker = "worker"
	// ServiceJaeger is the jaeger HTTP service identity.
	ServiceJaeger = "jaeger"
)

var grpcPorts = map[string]int{
	ServiceCourse:         50053,
	ServiceAssignment:     50054,
	ServiceAnalysisBroker: 50055,
	ServiceWorker:         50056,
}

var httpPorts = map[string]int{
	ServiceJaeger: 16686,
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	return defaultAddr(strings.TrimSpace(service), grpcPorts)
}

// DefaultHTTPAddr returns the canonical in-network HTTP address for a service.
func DefaultHTTPAddr(service string) string {
	return defaultAddr(strings.TrimSpace(service), httpPorts)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

// DefaultGRPCPort returns the conventional gRPC port for a service, or zero.
func DefaultGRPCPort(service string) int {
	return grpcPorts[strings.TrimSpace(service)]
}

func defaultAddr(service string, ports map[string]int) string {
	port, ok := ports[service]
	if !ok {
		return ""
	}
	return "localhost:" + strconv.Itoa(port)
}
