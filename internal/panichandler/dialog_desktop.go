//go:build (windows || darwin || unix) && !android && !ios

package panichandler

import "github.com/ncruces/zenity"

func showDialog(title, body string) error {
	return zenity.Error(body, zenity.Title(title))
}
