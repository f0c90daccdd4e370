package domain

// Timeframe é o seletor de período das consultas agregadas
type Timeframe string

const (
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

// Normalize devolve sempre um dos dois valores válidos. Qualquer entrada
// desconhecida cai para month; esse fallback é comportamento de contrato,
// não omissão. O valor normalizado é o único que pode ser interpolado nas
// consultas com DATE_TRUNC.
func (t Timeframe) Normalize() Timeframe {
	if t == TimeframeYear {
		return TimeframeYear
	}
	return TimeframeMonth
}

// DateFormat devolve o padrão TO_CHAR correspondente ao período
func (t Timeframe) DateFormat() string {
	if t.Normalize() == TimeframeYear {
		return "YYYY"
	}
	return "YYYY-MM"
}

// IsValid informa se o valor é exatamente month ou year, para as rotas que
// rejeitam períodos inválidos em vez de aplicar o fallback
func (t Timeframe) IsValid() bool {
	return t == TimeframeMonth || t == TimeframeYear
}
