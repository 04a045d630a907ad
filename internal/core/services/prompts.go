package services

// Prompt text sent to the remote model. The corpus is Brazilian public
// procurement notices, so the prompts and the rendered answers are in
// Portuguese.
const systemPrompt = "Você é um assistente especializado em analisar editais de licitação do Brasil. " +
	"Responda APENAS com base no CONTEXTO fornecido."

const answerInstructions = "Formate assim (markdown):\n" +
	"## Resumo direto\n" +
	"- resposta objetiva em 1–2 linhas\n\n" +
	"## Detalhes\n" +
	"- data e hora (se houver)\n" +
	"- plataforma/local (link se disponível)\n" +
	"- validade mínima da proposta (se houver)\n" +
	"- prazo de entrega/execução (se houver)\n\n" +
	"## Documentos de habilitação\n" +
	"- lista sintética e organizada (jurídica, fiscal, técnica) – somente se constar\n\n" +
	"## Observações\n" +
	"- penalidades, impugnação, contato etc. – somente se constar"

// User-facing canned answers.
const (
	emptyQuestionAnswer = "Pergunta vazia."

	noContextAnswer = "Não encontrei trechos relevantes nos documentos indexados para responder.\n\n" +
		"Sugestões de pergunta: **Data e hora de abertura?** • **Documentos de habilitação?** • " +
		"**Validade mínima da proposta?** • **Prazo de entrega?**"

	degradedNotice = "\n\n> Observação: IA indisponível no momento; usei um resumo local."
)
