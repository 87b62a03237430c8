// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/Andrei15193/EmbeddedResourceBrowser/cmd/resbrowser"

func main() {
	cmd.Execute()
}
