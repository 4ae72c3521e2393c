package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/matrixpong/resources"
	"github.com/jetsetilly/matrixpong/test"
)

func TestJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".matrixpong", "foo", "bar", "baz"))

	// intermediate directories are created but not the final element
	_, err = os.Stat(filepath.Join(".matrixpong", "foo", "bar"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = resources.JoinPath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".matrixpong")

	// base path is not added twice
	pth, err = resources.JoinPath(".matrixpong", "window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".matrixpong", "window"))
}

func TestReadWrite(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := resources.Read("window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	test.ExpectSuccess(t, resources.Write("window", "10,20,300,300"))

	s, err = resources.Read("window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "10,20,300,300")
}
