//go:build !release

package resources

const configDir = ".matrixpong"

func resourcePath() (string, error) {
	return configDir, nil
}
