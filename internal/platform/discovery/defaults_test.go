package discovery

import "testing"

func TestDefaultGRPCAddr(t *testing.T) {
	cases := map[string]string{
		ServiceCourse:         "localhost:50053",
		ServiceAssignment:     "localhost:50054",
		ServiceAnalysisBroker: "localhost:50055",
		ServiceWorker:         "localhost:50056",
	}
	for service, want := range cases {
		if got := DefaultGRPCAddr(service); got != want {
			t.Fatalf("DefaultGRPCAddr(%q) = %q, want %q", service, got, want)
		}
	}
}

func TestDefaultGRPCAddrUnknownService(t *testing.T) {
	if got := DefaultGRPCAddr("unknown"); got != "" {
		t.Fatalf("DefaultGRPCAddr(unknown) = %q, want empty", got)
	}
}

func TestDefaultHTTPAddr(t *testing.T) {
	if got := DefaultHTTPAddr(ServiceJaeger); got != "localhost:16686" {
		t.Fatalf("DefaultHTTPAddr(jaeger) = %q, want localhost:16686", got)
	}
}

func TestOrDefaultGRPCAddr(t *testing.T) {
	if got := OrDefaultGRPCAddr(" custom:9000 ", ServiceCourse); got != "custom:9000" {
		t.Fatalf("expected explicit grpc addr to win, got %q", got)
	}
	if got := OrDefaultGRPCAddr("", ServiceCourse); got != "localhost:50053" {
		t.Fatalf("expected default grpc addr, got %q", got)
	}
}

func TestDefaultGRPCPort(t *testing.T) {
	if got := DefaultGRPCPort(ServiceAssignment); got != 50054 {
		t.Fatalf("DefaultGRPCPort(assignment) = %d, want 50054", got)
	}
	if got := DefaultGRPCPort("unknown"); got != 0 {
		t.Fatalf("DefaultGRPCPort(unknown) = %d, want 0", got)
	}
}
