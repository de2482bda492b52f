// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/dhm116/letterpress/cmd/letterpress"

func main() {
	cmd.Execute()
}
