package domain

import (
	"errors"
	"fmt"
	"time"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrCredenciaisInvalidas = errors.New("email ou senha inválidos")
	ErrNaoAutenticado       = errors.New("não autenticado")
	ErrPermissaoNegada      = errors.New("permissão negada")
	ErrUsuarioRemovido      = errors.New("usuário removido")
	ErrUsuarioInativo       = errors.New("usuário inativo")
	ErrTrocaSenhaPendente   = errors.New("troca de senha obrigatória")
	ErrEmailJaCadastrado    = errors.New("email já cadastrado")
	ErrRoleInvalida         = errors.New("role_id inválido")
	ErrSenhaAtualInvalida   = errors.New("senha atual inválida")
	ErrEntradaInvalida      = errors.New("entrada inválida")

	// Senha temporária tem janela de validade obrigatória: sem a janela
	// provisionada, ou com a janela vencida, o login é negado mesmo com a
	// senha correta.
	ErrSenhaTemporariaNaoProvisionada = errors.New("senha temporária não provisionada")
	ErrSenhaTemporariaExpirada        = errors.New("senha temporária expirada")
)

// ContaBloqueadaError bloqueio temporário por excesso de tentativas de login.
// A mensagem expõe o horário de desbloqueio de propósito: o usuário precisa
// saber quando pode tentar de novo.
type ContaBloqueadaError struct {
	Ate time.Time
}

func (e *ContaBloqueadaError) Error() string {
	return fmt.Sprintf("conta bloqueada até %s", e.Ate.Format(time.RFC3339))
}
