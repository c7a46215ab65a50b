// Package hasher concentra o hashing de senhas (bcrypt, com salt embutido).
package hasher

import "golang.org/x/crypto/bcrypt"

// Hash gera o digest bcrypt da senha. Custo fora da faixa do bcrypt cai no
// DefaultCost.
func Hash(senha string, custo int) (string, error) {
	if custo < bcrypt.MinCost || custo > bcrypt.MaxCost {
		custo = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(senha), custo)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verificar compara senha e digest. Digest malformado conta como não-match;
// a comparação interna do bcrypt é resistente a timing.
func Verificar(senha, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(senha)) == nil
}
