//go:build !release

package resources

const configDir = ".testdmg"

func resourcePath() (string, error) {
	return configDir, nil
}
