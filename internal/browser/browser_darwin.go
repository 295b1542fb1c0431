//go:build darwin

package browser

func platformCommand(url string) (string, []string) {
	return "open", []string{url}
}
