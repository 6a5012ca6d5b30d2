// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cloudeng.io/holidays"
	"gopkg.in/yaml.v3"
)

type printableHoliday struct {
	Name        string `yaml:"name"`
	Date        string `yaml:"date"`
	Category    string `yaml:"category"`
	Emoji       string `yaml:"emoji,omitempty"`
	Description string `yaml:"description,omitempty"`
}

func printHolidays(asYAML bool, occs holidays.Occurrences) error {
	if len(occs) == 0 {
		fmt.Println("no holidays")
		return nil
	}
	if !asYAML {
		for _, o := range occs {
			if len(o.Rule.Emoji) > 0 {
				fmt.Printf("%04d-%02d-%02d %s %s\n", o.Date.Year(), o.Date.Month(), o.Date.Day(), o.Rule.Emoji, o.Name)
				continue
			}
			fmt.Printf("%04d-%02d-%02d %s\n", o.Date.Year(), o.Date.Month(), o.Date.Day(), o.Name)
		}
		return nil
	}
	out := make([]printableHoliday, len(occs))
	for i, o := range occs {
		out[i] = printableHoliday{
			Name:        o.Name,
			Date:        fmt.Sprintf("%04d-%02d-%02d", o.Date.Year(), o.Date.Month(), o.Date.Day()),
			Category:    o.Category.String(),
			Emoji:       o.Rule.Emoji,
			Description: o.Rule.Description,
		}
	}
	return yaml.NewEncoder(os.Stdout).Encode(out)
}
