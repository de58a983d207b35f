package main

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"

	japi "github.com/japi-fu/japi"
	"github.com/japi-fu/japi/parser"
)

func main() {
	resource := pflag.String("resource", "", "the resource type name of the endpoint the document targets")
	method := pflag.String("method", "POST", "the request method (POST, PUT, or PATCH)")
	relationship := pflag.Bool("relationship", false, "treat the document as a relationship endpoint payload")
	input := pflag.StringP("input", "i", "", "the document to parse (defaults to stdin)")
	pflag.Parse()

	if *resource == "" && !*relationship {
		fmt.Fprintln(os.Stderr, "the --resource flag is required")
		os.Exit(1)
	}

	intent, ok := parser.IntentForMethod(*method)
	if !ok {
		fmt.Fprintf(os.Stderr, "%v requests don't carry documents\n", *method)
		os.Exit(1)
	}

	var body []byte
	var err error
	if *input != "" {
		body, err = os.ReadFile(*input)
	} else {
		body, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	record, err := japi.Parse(body, parser.RequestContext{
		ResourceName:         *resource,
		Intent:               intent,
		RelationshipEndpoint: *relationship,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var out any
	switch {
	case record.Identifier != nil:
		out = record.Identifier
	case record.Identifiers != nil:
		out = record.Identifiers
	default:
		out = map[string]any{
			"record":   record.Record,
			"included": record.Included,
		}
	}

	pretty, err := jsoniter.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(pretty))
}
