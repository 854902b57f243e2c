package database

import (
	"context"
	"database/sql"
	"fmt"
)

// seedModule is one entry of the baseline module catalog
type seedModule struct {
	title         string
	description   string
	content       string
	slug          string
	videoURL      string
	externalLinks string
}

// seedActivity is one entry of the baseline activity catalog; moduleIndex
// refers to a position in seedModules.
type seedActivity struct {
	moduleIndex  int
	title        string
	activityType string
	content      string
}

// seed inserts the baseline catalog if and only if the modules table is
// empty. The whole catalog goes in as one transaction: a half-seeded store
// would pass the emptiness check forever and permanently hide the missing
// rows, so the seed is all-or-nothing.
func seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM modules").Scan(&count); err != nil {
		return fmt.Errorf("failed to count modules: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	moduleIDs := make([]int64, len(seedModules))
	for i, m := range seedModules {
		videoURL := sql.NullString{String: m.videoURL, Valid: m.videoURL != ""}
		links := sql.NullString{String: m.externalLinks, Valid: m.externalLinks != ""}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO modules (title, description, content, slug, videoUrl, externalLinks)
			VALUES (?, ?, ?, ?, ?, ?)
		`, m.title, m.description, m.content, m.slug, videoURL, links)
		if err != nil {
			return fmt.Errorf("failed to seed module %q: %w", m.slug, err)
		}

		moduleIDs[i], err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get seeded module id: %w", err)
		}
	}

	for _, a := range seedActivities {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO activities (moduleId, title, type, content)
			VALUES (?, ?, ?, ?)
		`, moduleIDs[a.moduleIndex], a.title, a.activityType, a.content)
		if err != nil {
			return fmt.Errorf("failed to seed activity %q: %w", a.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}

// seedModules is the fixed baseline catalog of six learning modules
var seedModules = []seedModule{
	{
		title:       "Slides atrativos",
		description: "Aprenda a fazer slides com a plataforma Canva",
		slug:        "slides-atrativos",
		videoURL:    "https://www.youtube.com/watch?v=exemplo1",
		externalLinks: `[{"title":"Canva","url":"https://canva.com"},` +
			`{"title":"Templates gratuitos","url":"https://canva.com/templates"}]`,
		content: `# Slides Atrativos com Canva

## Introdução
Neste módulo, você aprenderá a criar apresentações visuais atrativas usando a plataforma Canva, uma ferramenta online gratuita e intuitiva.

## Objetivos de Aprendizagem
- Conhecer a interface do Canva
- Criar slides com design profissional
- Utilizar templates e elementos visuais
- Exportar e compartilhar apresentações

## Conteúdo Teórico

### 1. Introdução ao Canva
O Canva é uma plataforma de design gráfico que permite criar apresentações, infográficos, posts para redes sociais e muito mais, sem necessidade de conhecimento técnico em design.

### 2. Criando sua primeira apresentação
- Acesse canva.com
- Escolha "Apresentação"
- Selecione um template ou comece do zero
- Personalize cores, fontes e imagens

### 3. Elementos essenciais de um slide atrativo
- **Hierarquia visual**: Use tamanhos diferentes para títulos e texto
- **Cores harmoniosas**: Escolha uma paleta de 2-3 cores
- **Imagens de qualidade**: Use fotos em alta resolução
- **Espaço em branco**: Não sobrecarregue o slide

## Atividades Práticas
1. Crie uma apresentação de 5 slides sobre um tema de sua escolha
2. Use pelo menos 3 elementos visuais diferentes (ícones, imagens, gráficos)
3. Aplique uma paleta de cores consistente`,
	},
	{
		title:       "Quiz dinâmicos",
		description: "Aprenda a fazer quiz do tipo Kahoot para a sala de aula",
		slug:        "quiz-dinamicos",
		videoURL:    "https://www.youtube.com/watch?v=exemplo2",
		externalLinks: `[{"title":"Kahoot","url":"https://kahoot.com"},` +
			`{"title":"Kahoot Academy","url":"https://kahoot.com/academy"}]`,
		content: `# Quiz Dinâmicos com Kahoot

## Introdução
Aprenda a criar quizzes interativos e envolventes para suas aulas usando o Kahoot, uma plataforma que gamifica o aprendizado.

## Objetivos de Aprendizagem
- Criar conta no Kahoot
- Desenvolver quizzes educativos
- Configurar jogos ao vivo
- Analisar resultados dos alunos

## Conteúdo Teórico

### 1. O que é o Kahoot?
O Kahoot é uma plataforma de aprendizado baseada em jogos que permite criar quizzes, pesquisas e discussões interativas.

### 2. Tipos de atividades
- **Quiz**: Perguntas de múltipla escolha
- **Jumble**: Colocar itens em ordem
- **Poll**: Pesquisas de opinião
- **Survey**: Questionários mais longos

### 3. Criando um quiz eficaz
- Perguntas claras e objetivas
- Alternativas plausíveis
- Tempo adequado para resposta
- Imagens e vídeos para ilustrar

## Dicas Pedagógicas
- Use o Kahoot como revisão de conteúdo
- Crie competições saudáveis entre grupos
- Analise os erros mais comuns para reforçar o aprendizado
- Varie os tipos de perguntas para manter o interesse`,
	},
	{
		title:       "Boas anotações",
		description: "Aprenda a tomar notas de maneira eficiente",
		slug:        "boas-anotacoes",
		externalLinks: `[{"title":"Notion","url":"https://notion.so"},` +
			`{"title":"Obsidian","url":"https://obsidian.md"}]`,
		content: `# Técnicas de Anotações Eficientes

## Introdução
Desenvolva habilidades para tomar notas de forma organizada e eficiente, tanto para estudo quanto para ensino.

## Métodos de Anotação

### 1. Método Cornell
- Divida a página em 3 seções
- Notas principais, palavras-chave e resumo
- Ideal para aulas expositivas

### 2. Mapas Mentais
- Conceito central no meio
- Ramificações com subtópicos
- Use cores e símbolos

### 3. Método Outline
- Estrutura hierárquica
- Tópicos e subtópicos numerados
- Fácil de revisar

## Ferramentas Digitais
- **Notion**: Organização completa
- **Obsidian**: Conexões entre notas
- **OneNote**: Integração com Office
- **Evernote**: Captura multiplataforma

## Dicas Práticas
- Use abreviações consistentes
- Destaque informações importantes
- Revise e organize regularmente
- Faça conexões entre conceitos`,
	},
	{
		title:       "Google Docs",
		description: "Aprenda a usar o Google Docs, o substituto do Word",
		slug:        "google-docs",
		externalLinks: `[{"title":"Google Docs","url":"https://docs.google.com"},` +
			`{"title":"Templates","url":"https://docs.google.com/document/u/0/?ftv=1&folder=0AHVGZGONnHGRUk9PVA"}]`,
		content: `# Google Docs para Educadores

## Introdução
Domine o Google Docs para criar, editar e compartilhar documentos de forma colaborativa na educação.

## Funcionalidades Principais

### 1. Criação e Formatação
- Estilos de texto e parágrafos
- Inserção de imagens e tabelas
- Cabeçalhos e rodapés
- Numeração de páginas

### 2. Colaboração em Tempo Real
- Compartilhamento com permissões
- Comentários e sugestões
- Histórico de versões
- Chat integrado

### 3. Ferramentas Educacionais
- **Explore**: Pesquisa integrada
- **Corretor ortográfico**: Múltiplos idiomas
- **Voz para texto**: Ditado por voz
- **Complementos**: Extensões úteis

## Casos de Uso na Educação
- Criação colaborativa de textos
- Correção de trabalhos com comentários
- Elaboração de projetos em grupo
- Documentação de atividades

## Dicas Avançadas
- Use modelos para padronizar documentos
- Configure notificações de alterações
- Aproveite os atalhos de teclado
- Integre com outras ferramentas Google`,
	},
	{
		title:       "Pesquisas",
		description: "Aprenda a fazer boas pesquisas utilizando palavras chave",
		slug:        "pesquisas",
		externalLinks: `[{"title":"Google Scholar","url":"https://scholar.google.com"},` +
			`{"title":"Zotero","url":"https://zotero.org"}]`,
		content: `# Técnicas de Pesquisa Eficiente

## Introdução
Desenvolva habilidades para realizar pesquisas acadêmicas e educacionais de qualidade usando estratégias e ferramentas adequadas.

## Estratégias de Busca

### 1. Palavras-chave Eficazes
- Use termos específicos e relevantes
- Combine sinônimos e variações
- Utilize aspas para frases exatas
- Experimente diferentes idiomas

### 2. Operadores Booleanos
- **AND**: Ambos os termos devem aparecer
- **OR**: Qualquer um dos termos
- **NOT**: Excluir termos específicos
- **Parênteses**: Agrupar operações

### 3. Filtros e Refinamentos
- Data de publicação
- Tipo de arquivo (PDF, DOC, etc.)
- Domínio específico (.edu, .gov)
- Idioma do conteúdo

## Fontes Confiáveis
- **Google Scholar**: Artigos acadêmicos
- **JSTOR**: Periódicos científicos
- **ResearchGate**: Rede de pesquisadores
- **Biblioteca Digital**: Acervos institucionais

## Avaliação de Fontes
- Verifique a autoridade do autor
- Analise a data de publicação
- Confirme com múltiplas fontes
- Observe possíveis vieses

## Organização da Pesquisa
- Use gerenciadores de referência (Zotero, Mendeley)
- Mantenha anotações organizadas
- Cite adequadamente as fontes
- Crie um sistema de arquivamento`,
	},
	{
		title:       "IA eficiente",
		description: "Aprenda a fazer boas perguntas para o ChatGPT",
		slug:        "ia-eficiente",
		externalLinks: `[{"title":"ChatGPT","url":"https://chat.openai.com"},` +
			`{"title":"Prompt Engineering Guide","url":"https://www.promptingguide.ai"}]`,
		content: `# IA Eficiente: Maximizando o ChatGPT na Educação

## Introdução
Aprenda a utilizar inteligência artificial, especialmente o ChatGPT, como ferramenta pedagógica eficaz.

## Princípios de Prompts Eficazes

### 1. Clareza e Especificidade
- Seja específico sobre o que deseja
- Forneça contexto adequado
- Defina o formato da resposta
- Estabeleça limitações quando necessário

### 2. Estrutura de Prompts
- **Papel**: "Atue como um professor de..."
- **Contexto**: "Para alunos do ensino médio..."
- **Tarefa**: "Crie um plano de aula sobre..."
- **Formato**: "Em formato de lista numerada..."

### 3. Técnicas Avançadas
- **Chain of Thought**: Peça para explicar o raciocínio
- **Few-shot**: Forneça exemplos
- **Iteração**: Refine as respostas gradualmente
- **Verificação**: Peça para revisar e corrigir

## Aplicações Educacionais

### Planejamento de Aulas
- Criação de objetivos de aprendizagem
- Desenvolvimento de atividades
- Sugestões de recursos
- Avaliações formativas

### Criação de Conteúdo
- Exercícios e questões
- Explicações simplificadas
- Analogias e exemplos
- Material de apoio

### Feedback e Avaliação
- Análise de textos dos alunos
- Sugestões de melhoria
- Rubrica de avaliação
- Feedback personalizado

## Limitações e Cuidados
- Sempre verifique as informações
- Não substitua o julgamento pedagógico
- Respeite direitos autorais
- Mantenha a transparência com os alunos

## Exemplos Práticos

**Prompt para criar exercícios:**
"Atue como um professor de matemática. Crie 5 exercícios de nível médio sobre equações do segundo grau, incluindo as respostas e explicações passo a passo."

**Prompt para simplificar conceitos:**
"Explique o conceito de fotossíntese para alunos de 10 anos, usando analogias simples e linguagem acessível."`,
	},
}

// seedActivities are the sample activities attached to the first two modules
var seedActivities = []seedActivity{
	{
		moduleIndex:  0,
		title:        "Quiz: Elementos de Design",
		activityType: "quiz",
		content: `{"questions":[` +
			`{"question":"Qual é a regra básica para escolher cores em um slide?",` +
			`"options":["Usar muitas cores","Usar 2-3 cores harmoniosas","Usar apenas preto e branco","Cores não importam"],` +
			`"correct":1},` +
			`{"question":"O que é hierarquia visual?",` +
			`"options":["Ordem alfabética","Tamanhos diferentes para diferentes níveis de informação","Usar apenas maiúsculas","Centralizar tudo"],` +
			`"correct":1}]}`,
	},
	{
		moduleIndex:  1,
		title:        "Criar seu primeiro Kahoot",
		activityType: "simulator",
		content: `{"instructions":"Acesse kahoot.com, crie uma conta e desenvolva um quiz com 5 perguntas sobre um tema de sua escolha.",` +
			`"deliverables":["Link do Kahoot criado","Screenshot das perguntas"]}`,
	},
}
