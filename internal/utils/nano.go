package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	AlphabetAlnum     = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetBase36    = "0123456789abcdefghijklmnopqrstuvwxyz"
	AlphabetBase36Up  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	defaultNanoidSize = 32
)

func NanoID() string {
	return NanoIDSize(defaultNanoidSize)
}

func NanoIDSize(size int) string {
	return NanoIDAlphabet(AlphabetAlnum, size)
}

func NanoIDAlphabet(alphabet string, size int) string {
	if size == 0 {
		size = defaultNanoidSize
	}

	return gonanoid.MustGenerate(alphabet, size)
}
