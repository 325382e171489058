/*
The deadflow command reports unused Flow type declarations and type-only imports.

	Usage: deadflow [flags] [path]

The deadflow command walks the given directory (the current working directory
by default) and lints every file opted into Flow with a "@flow" comment. It
reports type aliases and type-only imports whose name is never used anywhere
else in the same file, so the dead type code can be removed.

# How it works

For each candidate file:
 1. Skips the file unless it contains the marker
 2. Finds "import type X from", "import type { X, Y } from" and "type X =" constructs
 3. Blanks those constructs out without moving any other text
 4. Reports every introduced name that no longer appears as a whole word

Exported aliases ("export type X =") may be used by other files and are never
reported.

# Example

	$ deadflow src/
	Found 1 unused Flow type.

	src/app.js
	  Props:3:15:import type { Props } from './props';

# Flags

The --json flag outputs results in JSON format.

The --debug flag enables verbose debug output.

The --config flag reads settings from a YAML file. Without it, a .deadflow.yaml
file in the scanned directory is used when present.

The --watch flag keeps running and lints again whenever a candidate file changes.

The --no-color flag disables colors even when writing to a terminal.

# Configuration

	marker: "@flow"
	extensions: [".js"]
	exclude: ["__mocks__", "__tests__", "node_modules"]
	concurrency: 0

Paths containing any exclude entry are skipped. A concurrency of 0 lints as
many files in parallel as there are CPUs.

# Limitations

The analysis is purely textual:
  - Does not understand scoping or shadowing
  - Does not follow re-exports or dynamic references
  - A name declared twice in one file is reported for its last declaration only
*/
package main
