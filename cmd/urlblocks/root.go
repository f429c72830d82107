package main

import (
	"bufio"
	"errors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	urlblocks "github.com/urlblocks/go-urlblocks"
)

// newRootCmd builds the urlblocks command. URLs are taken from the
// argument list and, with --file, from a newline-delimited file on fs.
func newRootCmd(fs afero.Fs) *cobra.Command {
	var asIRI bool
	var filePath string

	cmd := &cobra.Command{
		Use:           "urlblocks [url ...]",
		Short:         "Decompose URLs into scheme, auth, hostname, port, path, query and fragment",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := args
			if filePath != "" {
				fromFile, err := readURLFile(fs, filePath)
				if err != nil {
					return err
				}
				urls = append(urls, fromFile...)
			}
			if len(urls) == 0 {
				return errors.New("no URLs given")
			}
			for _, rawURL := range urls {
				var u urlblocks.URL
				var err error
				if asIRI {
					u, err = urlblocks.ParseIRI(rawURL)
				} else {
					u, err = urlblocks.Parse(rawURL)
				}
				if err != nil {
					return err
				}
				urlblocks.PrintURL(u)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asIRI, "iri", false, "treat inputs as IRIs, encoding non-ASCII hostnames with IDNA")
	cmd.Flags().StringVar(&filePath, "file", "", "read additional newline-delimited URLs from this file")
	return cmd
}

// readURLFile reads newline-delimited URLs from path, skipping blank
// lines.
func readURLFile(fs afero.Fs, path string) ([]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			urls = append(urls, line)
		}
	}
	return urls, scanner.Err()
}
