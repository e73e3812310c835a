package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, BoardHealthKey, "vida: %d/%d")
	message.SetString(lang, BoardWeaponKey, "arma: %d | enfrenta abaixo de: %d")
	message.SetString(lang, BoardDeckKey, "cartas no baralho: %d")
	message.SetString(lang, BoardTurnKey, "turno: %d")
	message.SetString(lang, BoardSkippedKey, "turno pulado: %d")
	message.SetString(lang, BoardHealedKey, "turno curado: %d")
	message.SetString(lang, BoardEmptyKey, "a sala está vazia")

	message.SetString(lang, PromptKey, "ação [f|a|e|h <n>, s, r, q]: ")
	message.SetString(lang, GoodbyeKey, "Você deixa a masmorra.")
	message.SetString(lang, WinKey, "Você venceu!")
	message.SetString(lang, LoseKey, "Você perdeu")
	message.SetString(lang, ScoreKey, "Pontuação: %d")

	message.SetString(lang, RulesTitleKey, "Regras")
	message.SetString(lang, RulesBodyKey, `A masmorra é um baralho de 44 cartas: paus e espadas são monstros,
ouros são armas e copas são poções de vida. Figuras e ases vermelhos
ficam fora da masmorra.

A cada turno uma sala de 4 cartas é revelada. Resolva 3 delas; a última
fica e passa a fazer parte da próxima sala.

  f <n>  enfrenta de mãos vazias o monstro na posição n: perde vida igual à força dele
  a <n>  ataca com a arma o monstro na posição n: perde apenas a diferença
         entre o monstro e a arma
  e <n>  equipa a arma na posição n, descartando a atual
  h <n>  bebe a poção na posição n (só uma poção por turno cura, a vida
         nunca passa de 20)
  s      pula a sala: as 4 cartas vão para o fundo do baralho. Não é possível
         pular uma sala já iniciada, nem duas salas seguidas
  r      mostra estas regras
  q      sai do jogo

Depois que uma arma mata um monstro, ela só pode ser usada contra monstros
mais fracos que o último que ela matou.

O jogo termina quando a vida chega a 0 ou as cartas da masmorra acabam.
Se a última sala tiver 4 cartas ou menos, você vence automaticamente. A
vitória pontua a vida restante; a derrota pontua menos a força dos
monstros que ainda estão no baralho.`)

	message.SetString(lang, ErrRoomFullKey, "A sala já está cheia.")
	message.SetString(lang, ErrNotAWeaponKey, "Essa carta não é uma arma.")
	message.SetString(lang, ErrNotAPotionKey, "Essa carta não é uma poção.")
	message.SetString(lang, ErrCannotSkipKey, "Não é possível pular uma sala já iniciada.")
	message.SetString(lang, ErrCannotSkipTwoInRowKey, "Não é possível pular duas salas seguidas.")
	message.SetString(lang, ErrNotAMonsterKey, "Essa carta não é um monstro.")
	message.SetString(lang, ErrIndexOutOfBoundsKey, "Não há carta nessa posição.")
	message.SetString(lang, ErrNoWeaponEquippedKey, "Você não tem arma equipada.")
	message.SetString(lang, ErrMonsterTooStrongForWeaponKey, "Sua arma só mata monstros mais fracos que o último que ela matou.")
	message.SetString(lang, ErrInvalidActionKey, "Essa ação não é permitida.")
	message.SetString(lang, ErrEmptyInputKey, "Digite uma ação.")
	message.SetString(lang, ErrUnknownCommandKey, "Comando desconhecido, digite r para ver as regras.")
	message.SetString(lang, ErrMissingIndexKey, "Esse comando precisa da posição de uma carta.")
	message.SetString(lang, ErrInvalidIndexKey, "A posição da carta deve ser um número.")
	message.SetString(lang, ErrIndexStartsAtOneKey, "As posições das cartas começam em 1.")
	message.SetString(lang, ErrUnexpectedKey, "Algo deu errado: %v")
}
