package constants

// User-facing messages, kept in pt-BR to match the client.
const (
	MsgTokenMissing   = "Token não fornecido"
	MsgTokenMalformed = "Token mal formatado"
	MsgTokenExpired   = "Token expirado"
	MsgTokenInvalid   = "Token inválido"
	MsgUserNotFound   = "Usuário não encontrado"
	MsgUserDisabled   = "Usuário desativado"
	MsgForbidden      = "Acesso negado. Permissão insuficiente."

	MsgInvalidCredentials = "Credenciais inválidas"
	MsgEmailTaken         = "Email já cadastrado"
	MsgCurrentPwdRequired = "Senha atual é obrigatória"
	MsgCurrentPwdWrong    = "Senha atual incorreta"

	MsgVoluntarioNotFound = "Voluntário não encontrado"
	MsgCPFTaken           = "CPF já cadastrado"
	MsgOficinaNotFound    = "Oficina não encontrada"
	MsgOficinaRequired    = "Informe o ID da oficina"
	MsgAlreadyAssociated  = "Oficina já associada ao voluntário"
)
