package service

import "errors"

// Sentinel errors the handler layer maps onto HTTP statuses with errors.Is.
// Messages are returned to clients verbatim inside the response envelope, so
// they stay user-facing Portuguese. Anything not listed here surfaces as a
// generic 500.
var (
	// auth / usuarios
	ErrUsuarioNaoEncontrado = errors.New("Usuário não encontrado.")
	ErrSenhaIncorreta       = errors.New("Senha incorreta.")
	ErrNomeJaExiste         = errors.New("Nome de usuário já existe.")
	ErrAutoRemocao          = errors.New("Você não pode remover sua própria conta de administrador.")

	// criancas
	ErrCriancaNaoEncontrada = errors.New("Criança não encontrada para desativar.")

	// registros (presence state machine)
	ErrCriancaJaPresente   = errors.New("Criança já está presente.")
	ErrSemCheckinAtivo     = errors.New("Criança não tem um check-in ativo para realizar check-out.")
	ErrCheckoutJaRealizado = errors.New("Criança já realizou check-out ou não está presente.")

	// relatorio
	ErrDataInvalida          = errors.New("Data inválida. Use o formato YYYY-MM-DD.")
	ErrRelatorioIndisponivel = errors.New("Função get_daily_report não encontrada no banco de dados. Verifique sua criação.")
)
