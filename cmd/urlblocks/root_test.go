package main

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func TestReadURLFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	contents := "http://www.google.com\n\nhttps://news.google.com/a/b?x=1\n"
	if err := afero.WriteFile(fs, "urls.txt", []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	urls, err := readURLFile(fs, "urls.txt")
	if err != nil {
		t.Errorf("Expected no error. Got %q", err)
	}
	expected := []string{"http://www.google.com", "https://news.google.com/a/b?x=1"}
	if !reflect.DeepEqual(urls, expected) {
		t.Errorf("Output %q not equal to expected %q", urls, expected)
	}
	if _, err := readURLFile(fs, "missing.txt"); err == nil {
		t.Errorf("Expected an error. Got no error.")
	}
}

func TestRootCmd(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "urls.txt", []byte("https://news.google.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd(fs)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"http://www.google.com/a?b=c", "--file", "urls.txt"})
	if err := cmd.Execute(); err != nil {
		t.Errorf("Expected no error. Got %q", err)
	}

	cmd = newRootCmd(fs)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"http://com"})
	if err := cmd.Execute(); err == nil {
		t.Errorf("Expected an error. Got no error.")
	}

	cmd = newRootCmd(fs)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--iri", "https://éxample.com/påth"})
	if err := cmd.Execute(); err != nil {
		t.Errorf("Expected no error. Got %q", err)
	}

	cmd = newRootCmd(fs)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Errorf("Expected an error. Got no error.")
	}
}
