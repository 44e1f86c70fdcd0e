package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"debugfixture/internal/classify"
	"debugfixture/internal/fixture"
)

var (
	classifyHeaders []string
	classifyJSON    bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <url>",
	Short: "Show how the server would classify a request",
	Long: `Classify a request offline, without starting the server. Useful when
writing scanner test cases.

Examples:
  debugfixture classify '/?debug=1&env=dev'
  debugfixture classify http://localhost:9000/ -H 'X-Debug: 1'`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringArrayVarP(&classifyHeaders, "header", "H", nil,
		`Request header as "Name: value" (repeatable)`)
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Output as JSON")
	classifyCmd.Flags().String("catalog", "", "Trigger catalog file (json, yaml or toml)")
}

// buildRequest turns a URL and curl-style header lines into a Request
func buildRequest(target string, headers []string) (classify.Request, error) {
	u, err := url.Parse(target)
	if err != nil {
		return classify.Request{}, fmt.Errorf("invalid url %q: %w", target, err)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	req := classify.NewRequest("GET", path)
	req.Query = classify.ParseQuery(u.RawQuery)

	for _, line := range headers {
		name, value, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return classify.Request{}, fmt.Errorf("invalid header %q, want \"Name: value\"", line)
		}
		if _, dup := req.Headers.Get(name); dup {
			continue
		}
		req.Headers.Set(name, strings.TrimLeft(value, " \t"))
	}
	return req, nil
}

func classifyTarget(c *classify.Classifier, target string, headers []string) (*ClassifyResponseCLI, error) {
	req, err := buildRequest(target, headers)
	if err != nil {
		return nil, err
	}

	resp := &ClassifyResponseCLI{
		Path:    req.Path,
		Dynamic: fixture.IsDynamicPath(req.Path),
		Params:  []string{},
		Headers: []string{},
	}
	if !resp.Dynamic {
		return resp, nil
	}

	res := c.Classify(req)
	resp.Debug = res.IsDebug()
	if res.Params != nil {
		resp.Params = res.Params
	}
	if res.Headers != nil {
		resp.Headers = res.Headers
	}
	return resp, nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ts, err := loadTriggerSet(afero.NewOsFs(), cfg)
	if err != nil {
		return err
	}

	resp, err := classifyTarget(classify.New(ts), args[0], classifyHeaders)
	if err != nil {
		return err
	}

	return writeResponse(cmd.OutOrStdout(), resp, classifyJSON)
}
