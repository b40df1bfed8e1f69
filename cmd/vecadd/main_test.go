package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-simdvec/vec"
)

func TestRunDefault(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"-impl", "generic"},
		{"-aligned"},
		{"-impl", "simd", "-aligned", "-v"},
	} {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != exitOK {
			t.Fatalf("run(%v) = %d, stderr: %s", args, code, stderr.String())
		}
		if got, want := stdout.String(), "6\n8\n10\n12\n"; got != want {
			t.Errorf("run(%v) stdout = %q, want %q", args, got, want)
		}
	}
}

func TestRunCustomOperands(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-a", "0.5, 1, 1.5, 2", "-b", "-1,-1,-1,-1"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if got, want := stdout.String(), "-0.5\n0\n0.5\n1\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRunVerboseLogsBackend(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stderr.String(), "kernel=") {
		t.Errorf("expected backend log on stderr, got %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "kernel") {
		t.Errorf("log leaked to stdout: %q", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"short operand", []string{"-a", "1,2,3"}, exitError},
		{"long operand", []string{"-b", "1,2,3,4,5"}, exitError},
		{"not a number", []string{"-a", "1,x,3,4"}, exitError},
		{"unknown impl", []string{"-impl", "avx"}, exitError},
		{"unknown flag", []string{"-bogus"}, exitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("exit = %d, want %d", code, tt.code)
			}
			if stdout.Len() != 0 {
				t.Errorf("unexpected stdout %q", stdout.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != exitOK {
		t.Errorf("exit = %d, want %d", code, exitOK)
	}
	if !strings.Contains(stderr.String(), "Usage: vecadd") {
		t.Errorf("usage not printed: %q", stderr.String())
	}
}

func TestParseOperand(t *testing.T) {
	got, err := parseOperand(" 1 , 2.5,-3,1e3")
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{1, 2.5, -3, 1000}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRunUnknownImplSkipsBackendLog(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v", "-impl", "avx"}, &stdout, &stderr); code != exitError {
		t.Fatalf("exit = %d, want %d", code, exitError)
	}
	if strings.Contains(stderr.String(), "kernel=") {
		t.Errorf("backend logged for a rejected implementation: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "impl=avx") {
		t.Errorf("expected the rejected implementation in the error log, got %q", stderr.String())
	}
}

func TestRunAlignedGenericWarns(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-aligned", "-impl", "generic"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "-aligned has no effect") {
		t.Errorf("expected warning on stderr, got %q", stderr.String())
	}
	if got, want := stdout.String(), "6\n8\n10\n12\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestAddSIMDShortOperand(t *testing.T) {
	for _, aligned := range []bool{false, true} {
		_, err := addSIMD([]float32{1, 2, 3}, []float32{1, 2, 3, 4}, aligned)
		if !errors.Is(err, vec.ErrLengthMismatch) {
			t.Errorf("aligned=%v: got %v, want ErrLengthMismatch", aligned, err)
		}
		_, err = addSIMD([]float32{1, 2, 3, 4}, []float32{1}, aligned)
		if !errors.Is(err, vec.ErrLengthMismatch) {
			t.Errorf("aligned=%v rhs: got %v, want ErrLengthMismatch", aligned, err)
		}
	}
}

func TestAddSIMDAligned(t *testing.T) {
	got, err := addSIMD([]float32{1, 2, 3, 4}, []float32{0.5, 0.5, 0.5, 0.5}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !vec.IsAligned(got) {
		t.Error("aligned result buffer is not 16-byte aligned")
	}
	want := []float32{1.5, 2.5, 3.5, 4.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}
