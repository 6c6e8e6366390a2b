package i18n

// Language tags of the built-in dictionaries.
const (
	LangEnglish = "en"
	LangPersian = "fa"
	LangFrench  = "fr"
	LangGerman  = "de"
	LangItalian = "it"
	LangChinese = "zh"
	LangCzech   = "cs"
	LangDutch   = "nl"
)

var english = Dictionary{
	CauseAccepted:      "Please accept this field",
	CauseAlpha:         "Please enter only alphabetic characters",
	CauseAlphaNum:      "Please enter only alpha-numeric characters",
	CauseAlphaNumDash:  "Please enter only alpha-numeric characters, dashes, and underscores",
	CauseBetweenLength: "The value must have between $1 and $2 characters",
	CauseBetweenNumber: "Please enter a number between $1 and $2",
	CauseDigits:        "The value must be a $1-digits number",
	CauseEmail:         "Please enter a valid email address",
	CauseEndsWith:      `The value must ends with "$1"`,
	CauseEqualLength:   "The value must have $1 characters",
	CauseEqualNumber:   "The value must be equal to $1",
	CauseGreaterEqual:  "Please enter a number greater than or equal to $1",
	CauseInteger:       "The value must be a valid integer",
	CauseLessEqual:     "Please enter a number less than or equal to $1",
	CauseMaxLength:     "Max length is $1",
	CauseMinLength:     "Min length is $1",
	CauseNumDash:       "Please enter numbers with dashes and underscores",
	CauseNumber:        "Please enter a valid number",
	CauseRegex:         "The value doesn't match the pattern",
	CauseRequired:      "This field is required",
	CauseStartsWith:    `The value must start with "$1"`,
	CauseWithin:        "The value is incorrect",
}

// Persian only covers a subset of causes; the rest fall back to the key.
var persian = Dictionary{
	CauseAccepted:      "لطفا این فیلد را تیک بزنید",
	CauseMaxLength:     "حداکثر طول مجاز این فیلد $1 است",
	CauseMinLength:     "حداقل طول مجاز این فیلد $1 است",
	CauseNumber:        "لطفا یک عدد معتبر وارد کنید",
	CauseBetweenNumber: "لطفا یک عدد بین $1 و $2 وارد کنید",
	CauseGreaterEqual:  "لطفا یک عدد بزرگتر یا مساوی $1 وارد کنید",
	CauseLessEqual:     "لطفا یک عدد کوچکتر یا مساوی $1 وارد کنید",
	CauseDigits:        "مقدار این فیلد باید $1 رقم باشد",
	CauseEmail:         "لطفا یک آدرس ایمیل معتبر وارد کنید",
	CauseStartsWith:    `مقدار این فیلد باید با "$1" شروع شود`,
	CauseEndsWith:      `مقدار این فیلد باید با "$1" پایان داده شود`,
	CauseInteger:       "مقدار این فیلد باید یک عدد صحیح باشد",
	CauseRequired:      "این فیلد الزامی است",
	CauseWithin:        "مقدار این فیلد نادرست است",
}

var french = Dictionary{
	CauseAccepted:      "Veuillez cocher ce champ",
	CauseAlpha:         "Veuillez saisir uniquement des lettres",
	CauseAlphaNum:      "Veuillez saisir uniquement des lettres et des chiffres",
	CauseAlphaNumDash:  "Veuillez saisir uniquement des lettres, des chiffres, des tirets et des underscores",
	CauseBetweenLength: "La valeur doit contenir entre $1 et $2 caractères",
	CauseBetweenNumber: "Veuillez saisir un nombre entre $1 et $2",
	CauseDigits:        "La valeur doit être un nombre à $1 chiffres",
	CauseEmail:         "Veuillez saisir une adresse e-mail valide",
	CauseEndsWith:      `La valeur doit se terminer par "$1"`,
	CauseEqualLength:   "La valeur doit contenir $1 caractères",
	CauseEqualNumber:   "La valeur doit être égale à $1",
	CauseGreaterEqual:  "Veuillez saisir un nombre supérieur ou égal à $1",
	CauseInteger:       "La valeur doit être un entier valide",
	CauseLessEqual:     "Veuillez saisir un nombre inférieur ou égal à $1",
	CauseMaxLength:     "La longueur maximale est de $1",
	CauseMinLength:     "La longueur minimale est de $1",
	CauseNumDash:       "Veuillez saisir des chiffres, des tirets et des underscores",
	CauseNumber:        "Veuillez saisir un nombre valide",
	CauseRegex:         "La valeur ne correspond pas au format attendu",
	CauseRequired:      "Ce champ est obligatoire",
	CauseStartsWith:    `La valeur doit commencer par "$1"`,
	CauseWithin:        "La valeur est incorrecte",
}

var german = Dictionary{
	CauseAccepted:      "Bitte bestätigen Sie dieses Feld",
	CauseAlpha:         "Bitte nur Buchstaben eingeben",
	CauseAlphaNum:      "Bitte nur Buchstaben und Ziffern eingeben",
	CauseAlphaNumDash:  "Bitte nur Buchstaben, Ziffern, Binde- und Unterstriche eingeben",
	CauseBetweenLength: "Der Wert muss zwischen $1 und $2 Zeichen lang sein",
	CauseBetweenNumber: "Bitte eine Zahl zwischen $1 und $2 eingeben",
	CauseDigits:        "Der Wert muss eine $1-stellige Zahl sein",
	CauseEmail:         "Bitte eine gültige E-Mail-Adresse eingeben",
	CauseEndsWith:      `Der Wert muss mit "$1" enden`,
	CauseEqualLength:   "Der Wert muss $1 Zeichen lang sein",
	CauseEqualNumber:   "Der Wert muss gleich $1 sein",
	CauseGreaterEqual:  "Bitte eine Zahl größer oder gleich $1 eingeben",
	CauseInteger:       "Der Wert muss eine gültige ganze Zahl sein",
	CauseLessEqual:     "Bitte eine Zahl kleiner oder gleich $1 eingeben",
	CauseMaxLength:     "Die maximale Länge beträgt $1",
	CauseMinLength:     "Die minimale Länge beträgt $1",
	CauseNumDash:       "Bitte nur Ziffern, Binde- und Unterstriche eingeben",
	CauseNumber:        "Bitte eine gültige Zahl eingeben",
	CauseRegex:         "Der Wert entspricht nicht dem Muster",
	CauseRequired:      "Dieses Feld ist erforderlich",
	CauseStartsWith:    `Der Wert muss mit "$1" beginnen`,
	CauseWithin:        "Der Wert ist ungültig",
}

var italian = Dictionary{
	CauseAccepted:      "Si prega di accettare questo campo",
	CauseAlpha:         "Inserire solo caratteri alfabetici",
	CauseAlphaNum:      "Inserire solo caratteri alfanumerici",
	CauseAlphaNumDash:  "Inserire solo caratteri alfanumerici, trattini e underscore",
	CauseBetweenLength: "Il valore deve avere tra $1 e $2 caratteri",
	CauseBetweenNumber: "Inserire un numero tra $1 e $2",
	CauseDigits:        "Il valore deve essere un numero di $1 cifre",
	CauseEmail:         "Inserire un indirizzo email valido",
	CauseEndsWith:      `Il valore deve terminare con "$1"`,
	CauseEqualLength:   "Il valore deve avere $1 caratteri",
	CauseEqualNumber:   "Il valore deve essere uguale a $1",
	CauseGreaterEqual:  "Inserire un numero maggiore o uguale a $1",
	CauseInteger:       "Il valore deve essere un numero intero valido",
	CauseLessEqual:     "Inserire un numero minore o uguale a $1",
	CauseMaxLength:     "La lunghezza massima è $1",
	CauseMinLength:     "La lunghezza minima è $1",
	CauseNumDash:       "Inserire numeri con trattini e underscore",
	CauseNumber:        "Inserire un numero valido",
	CauseRegex:         "Il valore non corrisponde al formato richiesto",
	CauseRequired:      "Questo campo è obbligatorio",
	CauseStartsWith:    `Il valore deve iniziare con "$1"`,
	CauseWithin:        "Il valore non è corretto",
}

var chinese = Dictionary{
	CauseAccepted:      "请勾选此项",
	CauseAlpha:         "请只输入字母",
	CauseAlphaNum:      "请只输入字母和数字",
	CauseAlphaNumDash:  "请只输入字母、数字、短横线和下划线",
	CauseBetweenLength: "长度必须在 $1 到 $2 个字符之间",
	CauseBetweenNumber: "请输入 $1 到 $2 之间的数字",
	CauseDigits:        "必须是 $1 位数字",
	CauseEmail:         "请输入有效的电子邮件地址",
	CauseEndsWith:      `必须以 "$1" 结尾`,
	CauseEqualLength:   "长度必须为 $1 个字符",
	CauseEqualNumber:   "必须等于 $1",
	CauseGreaterEqual:  "请输入大于或等于 $1 的数字",
	CauseInteger:       "必须是有效的整数",
	CauseLessEqual:     "请输入小于或等于 $1 的数字",
	CauseMaxLength:     "最大长度为 $1",
	CauseMinLength:     "最小长度为 $1",
	CauseNumDash:       "请输入数字、短横线和下划线",
	CauseNumber:        "请输入有效的数字",
	CauseRegex:         "格式不正确",
	CauseRequired:      "此项为必填项",
	CauseStartsWith:    `必须以 "$1" 开头`,
	CauseWithin:        "值不正确",
}

var czech = Dictionary{
	CauseAccepted:      "Prosím zaškrtněte toto pole",
	CauseAlpha:         "Zadejte prosím pouze písmena",
	CauseAlphaNum:      "Zadejte prosím pouze písmena a číslice",
	CauseAlphaNumDash:  "Zadejte prosím pouze písmena, číslice, pomlčky a podtržítka",
	CauseBetweenLength: "Hodnota musí mít $1 až $2 znaků",
	CauseBetweenNumber: "Zadejte prosím číslo mezi $1 a $2",
	CauseDigits:        "Hodnota musí být $1místné číslo",
	CauseEmail:         "Zadejte prosím platnou e-mailovou adresu",
	CauseEndsWith:      `Hodnota musí končit na "$1"`,
	CauseEqualLength:   "Hodnota musí mít $1 znaků",
	CauseEqualNumber:   "Hodnota musí být rovna $1",
	CauseGreaterEqual:  "Zadejte prosím číslo větší nebo rovno $1",
	CauseInteger:       "Hodnota musí být platné celé číslo",
	CauseLessEqual:     "Zadejte prosím číslo menší nebo rovno $1",
	CauseMaxLength:     "Maximální délka je $1",
	CauseMinLength:     "Minimální délka je $1",
	CauseNumDash:       "Zadejte prosím číslice, pomlčky a podtržítka",
	CauseNumber:        "Zadejte prosím platné číslo",
	CauseRegex:         "Hodnota neodpovídá požadovanému formátu",
	CauseRequired:      "Toto pole je povinné",
	CauseStartsWith:    `Hodnota musí začínat na "$1"`,
	CauseWithin:        "Hodnota je nesprávná",
}

var dutch = Dictionary{
	CauseAccepted:      "Vink dit veld aan",
	CauseAlpha:         "Voer alleen letters in",
	CauseAlphaNum:      "Voer alleen letters en cijfers in",
	CauseAlphaNumDash:  "Voer alleen letters, cijfers, streepjes en underscores in",
	CauseBetweenLength: "De waarde moet tussen $1 en $2 tekens lang zijn",
	CauseBetweenNumber: "Voer een getal tussen $1 en $2 in",
	CauseDigits:        "De waarde moet een getal van $1 cijfers zijn",
	CauseEmail:         "Voer een geldig e-mailadres in",
	CauseEndsWith:      `De waarde moet eindigen op "$1"`,
	CauseEqualLength:   "De waarde moet $1 tekens lang zijn",
	CauseEqualNumber:   "De waarde moet gelijk zijn aan $1",
	CauseGreaterEqual:  "Voer een getal groter dan of gelijk aan $1 in",
	CauseInteger:       "De waarde moet een geldig geheel getal zijn",
	CauseLessEqual:     "Voer een getal kleiner dan of gelijk aan $1 in",
	CauseMaxLength:     "De maximale lengte is $1",
	CauseMinLength:     "De minimale lengte is $1",
	CauseNumDash:       "Voer cijfers met streepjes en underscores in",
	CauseNumber:        "Voer een geldig getal in",
	CauseRegex:         "De waarde komt niet overeen met het patroon",
	CauseRequired:      "Dit veld is verplicht",
	CauseStartsWith:    `De waarde moet beginnen met "$1"`,
	CauseWithin:        "De waarde is onjuist",
}

var builtins = map[string]Dictionary{
	LangEnglish: english,
	LangPersian: persian,
	LangFrench:  french,
	LangGerman:  german,
	LangItalian: italian,
	LangChinese: chinese,
	LangCzech:   czech,
	LangDutch:   dutch,
}

// En returns a copy of the English dictionary.
func En() Dictionary { return english.Clone() }

// Fa returns a copy of the Persian dictionary.
func Fa() Dictionary { return persian.Clone() }

// Fr returns a copy of the French dictionary.
func Fr() Dictionary { return french.Clone() }

// De returns a copy of the German dictionary.
func De() Dictionary { return german.Clone() }

// It returns a copy of the Italian dictionary.
func It() Dictionary { return italian.Clone() }

// Zh returns a copy of the Chinese dictionary.
func Zh() Dictionary { return chinese.Clone() }

// Cs returns a copy of the Czech dictionary.
func Cs() Dictionary { return czech.Clone() }

// Nl returns a copy of the Dutch dictionary.
func Nl() Dictionary { return dutch.Clone() }

// Builtin returns a copy of the built-in dictionary for lang.
func Builtin(lang string) (Dictionary, bool) {
	d, ok := builtins[lang]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Builtins returns copies of every built-in dictionary keyed by language.
func Builtins() map[string]Dictionary {
	out := make(map[string]Dictionary, len(builtins))
	for lang, d := range builtins {
		out[lang] = d.Clone()
	}
	return out
}
