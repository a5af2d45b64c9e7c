package telegram

// UI texts in Portuguese.
const (
	startText = "👋 Sou o Zelar, seu assistente de agenda.\n\n" +
		"Escreva um compromisso do jeito que você fala:\n" +
		"\"reunião amanhã às 15h\", \"dentista sexta às sete da noite\"\n\n" +
		"Comandos:\n" +
		"/agenda — seus próximos compromissos\n" +
		"/fuso — mudar o fuso horário"

	didNotUnderstandText = "Não entendi a data/hora. 😕\n" +
		"Pode reformular? Ex.: \"dentista sexta às 14h\""

	resolveErrorText = "Algo deu errado ao interpretar sua mensagem. Tente de novo."
	storeErrorText   = "Não consegui salvar agora. Tente novamente em instantes."

	confirmFmt = "✅ Agendado: %s\n🗓 %s\n🌍 %s"

	agendaTitle     = "🗓 Próximos compromissos:"
	emptyAgendaText = "Sua agenda está vazia. Escreva um compromisso para começar!"

	askTZText = "Me diga o fuso no formato IANA, ex.: America/Sao_Paulo, America/Bahia, Europe/Lisbon"

	invalidTZFmt = "Fuso inválido: %q. Nada foi alterado.\nUse o formato IANA, ex.: America/Sao_Paulo"
	tzSetFmt     = "🌍 Fuso horário atualizado para %s"
)
