//go:build !unix

package termsize

func width(int) (int, bool) {
	return 0, false
}
