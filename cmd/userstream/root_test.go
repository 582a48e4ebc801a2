package main

import (
	"errors"
	"testing"

	"github.com/prodev-io/userstream"
)

func TestSubcommandsRegistered(t *testing.T) {
	t.Parallel()
	root := newRootCmd()
	want := map[string]bool{"stream": false, "batches": false, "pages": false, "average-age": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s subcommand not registered on root command", name)
		}
	}
}

func TestValidateSize(t *testing.T) {
	t.Parallel()
	for _, size := range []int{0, -5} {
		err := validateSize(size)
		if err == nil {
			t.Errorf("validateSize(%d): expected error, got nil", size)
		}
		if !errors.Is(err, userstream.ErrInvalidBatchSize) {
			t.Errorf("validateSize(%d): expected ErrInvalidBatchSize, got %v", size, err)
		}
	}
	if err := validateSize(1); err != nil {
		t.Errorf("validateSize(1): expected nil, got %v", err)
	}
}

func TestBatchesSizeFlag(t *testing.T) {
	t.Parallel()
	cmd := newBatchesCmd()
	if err := cmd.ParseFlags([]string{"--size", "250"}); err != nil {
		t.Fatal(err)
	}
	size, err := cmd.Flags().GetInt("size")
	if err != nil {
		t.Fatal(err)
	}
	if size != 250 {
		t.Errorf("--size flag: expected 250, got %d", size)
	}
}

func TestBatchesSizeFlagDefault(t *testing.T) {
	t.Parallel()
	cmd := newBatchesCmd()
	size, err := cmd.Flags().GetInt("size")
	if err != nil {
		t.Fatal(err)
	}
	if size != userstream.DefaultBatchSize {
		t.Errorf("--size default: expected %d, got %d", userstream.DefaultBatchSize, size)
	}
}

func TestBatchesOlderThanFlag(t *testing.T) {
	t.Parallel()
	cmd := newBatchesCmd()

	age, err := cmd.Flags().GetFloat64("older-than")
	if err != nil {
		t.Fatal(err)
	}
	if age != 0 {
		t.Errorf("--older-than default: expected 0 (filter disabled), got %v", age)
	}

	if err := cmd.ParseFlags([]string{"--size", "2", "--older-than", "25"}); err != nil {
		t.Fatal(err)
	}
	age, err = cmd.Flags().GetFloat64("older-than")
	if err != nil {
		t.Fatal(err)
	}
	if age != 25 {
		t.Errorf("--older-than flag: expected 25, got %v", age)
	}
}

func TestStreamOlderThanFlag(t *testing.T) {
	t.Parallel()
	cmd := newStreamCmd()
	if err := cmd.ParseFlags([]string{"--older-than", "25"}); err != nil {
		t.Fatal(err)
	}
	age, err := cmd.Flags().GetFloat64("older-than")
	if err != nil {
		t.Fatal(err)
	}
	if age != 25 {
		t.Errorf("--older-than flag: expected 25, got %v", age)
	}
}

func TestPagesRejectsArgs(t *testing.T) {
	t.Parallel()
	cmd := newPagesCmd()
	if cmd.Args == nil {
		t.Fatal("pages: expected Args validator")
	}
	if err := cmd.Args(cmd, []string{"extra"}); err == nil {
		t.Error("pages: expected error for extra arg, got nil")
	}
	if err := cmd.Args(cmd, []string{}); err != nil {
		t.Errorf("pages: expected no error for zero args, got %v", err)
	}
}
