// Package scalpel implements an HTML selection and extraction engine: a
// tag annotator, a malformed-HTML-tolerant forest builder, a recursive
// selector matcher, and two composable query languages — Scraper for
// hierarchical queries and SerialScraper for ordered sibling navigation.
//
// This package contains the domain types, the core algorithms, and the
// interfaces implementations rely on. Concrete collaborators (the HTML
// tokenizer, logging decorators) live in subdirectories named after
// their primary dependency, following the standard package layout used
// throughout this codebase.
package scalpel
