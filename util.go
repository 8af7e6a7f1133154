package sha256

type (
	by = []byte
	st = string
	no = int
)
