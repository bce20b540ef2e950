// SPDX-License-Identifier: MIT

package dataset

import "github.com/sirupsen/logrus"

// Option configures a Dataset at construction time.
type Option func(*Dataset)

// WithTitle sets the dataset title (typically the GEO series id).
func WithTitle(title string) Option {
	return func(d *Dataset) { d.title = title }
}

// WithLogger sets the logger used for build diagnostics. It is also handed to
// matrix.Normalize unless the caller passes its own matrix.WithLogger.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("dataset: WithLogger: logger must be non-nil")
	}

	return func(d *Dataset) { d.logger = l }
}
