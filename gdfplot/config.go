// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aclements/gdfplot/facet"
)

// envOr returns the value of environment variable key, or def if it
// is unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseStyle parses a -style value such as
//
//	kind=line ylim=0,10 'title=a b'
//
// Words are split with shell quoting rules.
func parseStyle(s string) (facet.Style, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return facet.Style{}, fmt.Errorf("parsing -style: %w", err)
	}
	opts := make(map[string]string, len(words))
	for _, w := range words {
		k, v, ok := strings.Cut(w, "=")
		if !ok || k == "" {
			return facet.Style{}, fmt.Errorf("parsing -style: %q is not key=value", w)
		}
		opts[k] = v
	}
	return facet.ParseStyle(opts)
}
