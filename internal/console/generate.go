package console

import (
	"github.com/vaultpass/passgen-go/internal/crypto"
)

// Generate produces count passwords with one generator, hashing each when
// withHash is set. count below 1 is treated as 1.
func Generate(opts crypto.Options, count int, withHash bool) ([]Result, error) {
	if count < 1 {
		count = 1
	}

	gen := crypto.NewGenerator(opts)
	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		password, err := gen.Generate()
		if err != nil {
			return nil, err
		}

		r := Result{Password: password}
		if withHash {
			if r.Hash, err = crypto.Hash(password); err != nil {
				return nil, err
			}
		}
		results = append(results, r)
	}
	return results, nil
}
