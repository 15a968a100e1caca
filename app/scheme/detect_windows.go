//go:build windows

package scheme

import "golang.org/x/sys/windows/registry"

// osDark reads AppsUseLightTheme from the personalization key. Older
// Windows versions miss the key or the value and report light.
func osDark() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER,
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Themes\Personalize`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	useLight, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return false
	}
	return useLight == 0
}
