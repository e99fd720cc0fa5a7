package pdf

// FormatMoney expone formatMoney para los tests.
var FormatMoney = formatMoney
