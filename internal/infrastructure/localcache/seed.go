package localcache

// Seed popula categorias e fornecedores de exemplo na primeira execução.
// No-op se já existirem categorias.
func (s *Store) Seed() error {
	existing, err := s.GetAll(EntityCategories)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	categories := []Record{
		{"nome": "Eletrônicos", "descricao": "Produtos eletrônicos e tecnologia", "ativa": true},
		{"nome": "Roupas", "descricao": "Vestuário e acessórios", "ativa": true},
		{"nome": "Casa e Jardim", "descricao": "Produtos para casa e jardim", "ativa": true},
		{"nome": "Esportes", "descricao": "Artigos esportivos", "ativa": true},
	}
	for _, c := range categories {
		if _, err := s.Save(EntityCategories, c); err != nil {
			return err
		}
	}

	suppliers := []Record{
		{
			"nome":     "TechSupply Ltda",
			"email":    "contato@techsupply.com",
			"fone":     "(11) 99999-0001",
			"cnpj":     "12345678000195",
			"endereco": "Rua da Tecnologia, 123 - São Paulo/SP",
			"ativo":    true,
		},
		{
			"nome":     "Moda & Estilo",
			"email":    "vendas@modaestilo.com",
			"fone":     "(11) 99999-0002",
			"cnpj":     "98765432000187",
			"endereco": "Av. Fashion, 456 - São Paulo/SP",
			"ativo":    true,
		},
		{
			"nome":     "Casa Conforto",
			"email":    "info@casaconforto.com",
			"fone":     "(11) 99999-0003",
			"cnpj":     "11122233000144",
			"endereco": "Rua do Lar, 789 - São Paulo/SP",
			"ativo":    true,
		},
	}
	for _, f := range suppliers {
		if _, err := s.Save(EntitySuppliers, f); err != nil {
			return err
		}
	}
	return nil
}
