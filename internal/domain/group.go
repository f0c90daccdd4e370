package domain

type Group struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GroupMember representa um usuário do grupo com a própria lista de vendas,
// usada na montagem do relatório de grupo
type GroupMember struct {
	User
	Sales []*Sale `json:"sales"`
}
