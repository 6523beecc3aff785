package canon

// languageTable maps lower-cased raw spellings, scripts and dialect labels to
// a canonical language name. "Music" marks music-only stations.
var languageTable = map[string]string{
	// Chinese
	"chinese":          "Chinese",
	"china":            "Chinese",
	"mandarin":         "Chinese",
	"mandarin chinese": "Chinese",
	"chinese mandarin": "Chinese",
	"国语":               "Chinese",
	"中文":               "Chinese",
	"中国":               "Chinese",
	"cantonese":        "Chinese",
	"hakka":            "Chinese",
	"hokkien":          "Chinese",
	"teochew":          "Chinese",
	"chaoshan dialect": "Chinese",

	// English
	"english":           "English",
	"american english":  "English",
	"british english":   "English",
	"australian":        "English",
	"engilsh":           "English",
	"engilsh uk":        "English",
	"engish":            "English",
	"englisg":           "English",
	"englsih":           "English",
	"englsh":            "English",
	"engllish":          "English",
	"englisj":           "English",
	"caribbean english": "English",
	"english uk":        "English",
	"english/":          "English",
	"engels":            "English",
	"en gb":             "English",
	"английский":        "English",

	// Spanish
	"spanish":                 "Spanish",
	"español":                 "Spanish",
	"castellano":              "Spanish",
	"andaluz.español":         "Spanish",
	"espa":                    "Spanish",
	"españa":                  "Spanish",
	"españo":                  "Spanish",
	"español - latinoamerica": "Spanish",
	"español argentina":       "Spanish",
	"español chile":           "Spanish",
	"español colombia":        "Spanish",
	"español costa rica":      "Spanish",
	"español ecuador":         "Spanish",
	"español internacional":   "Spanish",
	"español mexico":          "Spanish",
	"español paraguay":        "Spanish",
	"español peruano":         "Spanish",
	"espaňol":                 "Spanish",
	"espsñol":                 "Spanish",
	"castellano. español":     "Spanish",
	"castilian":               "Spanish",
	"castelhano":              "Spanish",
	"испанский":               "Spanish",

	// Arabic
	"arabic":          "Arabic",
	"arabi":           "Arabic",
	"arapça":          "Arabic",
	"arabesk":         "Arabic",
	"العربية":         "Arabic",
	"عربي":            "Arabic",
	"عربية":           "Arabic",
	"moroccan arabic": "Arabic",

	// Japanese
	"japanese": "Japanese",
	"japan":    "Japanese",
	"日本語":      "Japanese",
	"japones":  "Japanese",

	// Korean
	"korean": "Korean",
	"korea":  "Korean",
	"한국어":    "Korean",

	// French
	"french":           "French",
	"français":         "French",
	"francaise":        "French",
	"franch":           "French",
	"francés":          "French",
	"louisiana french": "French",

	// German
	"german":            "German",
	"deutsch":           "German",
	"deu":               "German",
	"deutsch fränkisch": "German",
	"gernan":            "German",
	"schweizerdeutsch":  "German",
	"pfälzisch":         "German",
	"norddeutsch":       "German",
	"sächsisch":         "German",
	"kölscher dialekt":  "German",
	"德语":                "German",

	// Russian
	"russian":                  "Russian",
	"русский":                  "Russian",
	"rus":                      "Russian",
	"rossia":                   "Russian",
	"язык: russia":             "Russian",
	"язык: ру":                 "Russian",
	"язык: русский":            "Russian",
	"язык: русский английский": "Russian",

	// Portuguese
	"portuguese":           "Portuguese",
	"português":            "Portuguese",
	"brazilian portuguese": "Portuguese",
	"portugues do braasil": "Portuguese",
	"portugues do brasil":  "Portuguese",
	"português  brasil":    "Portuguese",
	"português (br)":       "Portuguese",
	"português (brasil)":   "Portuguese",
	"pt-br":                "Portuguese",
	"portoguese":           "Portuguese",
	"portguese":            "Portuguese",
	"porguês":              "Portuguese",
	"port":                 "Portuguese",
	"por":                  "Portuguese",

	// Italian
	"italian":  "Italian",
	"italiano": "Italian",

	// Dutch
	"dutch":         "Dutch",
	"nederlands":    "Dutch",
	"durch":         "Dutch",
	"holland":       "Dutch",
	"nederland":     "Dutch",
	"nedersaksisch": "Dutch",
	"limburgs":      "Dutch",
	"twents":        "Dutch",
	"belge":         "Dutch",

	// Hindi
	"hindi": "Hindi",
	"हिंदी": "Hindi",
	"hindu": "Hindi",

	// Turkish
	"turkish":  "Turkish",
	"türkçe":   "Turkish",
	"türkisch": "Turkish",
	"türkish":  "Turkish",
	"turkt":    "Turkish",
	"turkçe":   "Turkish",

	// Ukrainian
	"ukrainian":  "Ukrainian",
	"ukranian":   "Ukrainian",
	"ukraninan":  "Ukrainian",
	"ukrainisch": "Ukrainian",
	"украина":    "Ukrainian",
	"ucrânia":    "Ukrainian",

	// Polish
	"polish": "Polish",
	"śląski": "Polish",

	// Czech
	"czech": "Czech",
	"česky": "Czech",

	// Romanian
	"romanian":   "Romanian",
	"româna":     "Romanian",
	"românä":     "Romanian",
	"română":     "Romanian",
	"moldovan":   "Romanian",
	"moldovian":  "Romanian",
	"молдавский": "Romanian",

	// Greek
	"greek": "Greek",
	"greel": "Greek",

	// Hungarian
	"hungarian": "Hungarian",
	"ungarisch": "Hungarian",

	// Bulgarian
	"bulgarian": "Bulgarian",
	"bulgaria":  "Bulgarian",

	// Croatian
	"croatian":  "Croatian",
	"croatia":   "Croatian",
	"kroatisch": "Croatian",

	// Serbian
	"serbian": "Serbian",
	"српски":  "Serbian",

	// Slovak
	"slovak": "Slovak",

	// Slovenian
	"slovenian":  "Slovenian",
	"slovenski":  "Slovenian",
	"slowenisch": "Slovenian",

	// Belarusian
	"belarusian": "Belarusian",
	"беларуская": "Belarusian",

	// Lithuanian
	"lithuanian": "Lithuanian",

	// Latvian
	"latvian":  "Latvian",
	"latviešu": "Latvian",

	// Estonian
	"estonian": "Estonian",
	"eesti":    "Estonian",

	// Finnish
	"finnish": "Finnish",
	"suomi":   "Finnish",
	"finish":  "Finnish",

	// Swedish
	"swedish": "Swedish",
	"swe":     "Swedish",

	// Norwegian
	"norwegian":  "Norwegian",
	"norsk":      "Norwegian",
	"norwwegian": "Norwegian",

	// Danish
	"danish":           "Danish",
	"dansk/oldnordisk": "Danish",

	// Icelandic
	"icelandic": "Icelandic",

	// Vietnamese
	"vietnamese": "Vietnamese",
	"月南":         "Vietnamese",

	// Thai
	"thai":    "Thai",
	"ภาษาไทย": "Thai",

	// Indonesian
	"indonesian":       "Indonesian",
	"bahasa indonesia": "Indonesian",

	// Malay
	"malay":             "Malay",
	"melayu":            "Malay",
	"kelantanese malay": "Malay",

	// Tagalog
	"tagalog":  "Tagalog",
	"filipino": "Tagalog",

	// Bengali
	"bengali": "Bengali",
	"bangla":  "Bengali",

	// Tamil
	"tamil": "Tamil",

	// Telugu
	"telugu": "Telugu",

	// Kannada
	"kannada": "Kannada",

	// Malayalam
	"malayalam": "Malayalam",
	"ml":        "Malayalam",

	// Punjabi
	"punjabi": "Punjabi",
	"punjab":  "Punjabi",
	"panjabi": "Punjabi",

	// Gujarati
	"gujarati": "Gujarati",
	"gujrati":  "Gujarati",

	// Marathi
	"marathi": "Marathi",

	// Nepali
	"nepali": "Nepali",

	// Sinhala
	"sinhala":   "Sinhala",
	"sinhalese": "Sinhala",

	// Burmese
	"burmese": "Burmese",

	// Khmer
	"khmer": "Khmer",

	// Lao
	"lao": "Lao",

	// Mongolian
	"mongolian": "Mongolian",
	"monoglian": "Mongolian",

	// Kazakh
	"kazakh": "Kazakh",

	// Uzbek
	"uzbek": "Uzbek",

	// Kyrgyz
	"kyrgyz": "Kyrgyz",

	// Tajik
	"tajik": "Tajik",

	// Turkmen
	"turkmen": "Turkmen",

	// Persian
	"persian": "Persian",
	"iran":    "Persian",
	"irani":   "Persian",
	"iranian": "Persian",

	// Kurdish
	"kurdish":  "Kurdish",
	"kurdi":    "Kurdish",
	"kurdish.": "Kurdish",

	// Hebrew
	"hebrew": "Hebrew",
	"he":     "Hebrew",

	// Yiddish
	"yiddish": "Yiddish",

	// Amharic
	"amharic": "Amharic",

	// Swahili
	"swahili":   "Swahili",
	"kiswahili": "Swahili",

	// Hausa
	"hausa":   "Hausa",
	"hausa l": "Hausa",

	// Yoruba
	"yoruba": "Yoruba",

	// Igbo
	"ibo": "Igbo",

	// Zulu
	"zulu":    "Zulu",
	"isizulu": "Zulu",

	// Xhosa
	"xhosa":    "Xhosa",
	"isixhosa": "Xhosa",

	// Afrikaans
	"afrikaans": "Afrikaans",

	// Sesotho
	"sesotho": "Sesotho",

	// Setswana
	"setswana": "Setswana",

	// Sepedi
	"sepedi": "Sepedi",

	// Tshivenda
	"tshivenda": "Tshivenda",
	"tshivenḓa": "Tshivenda",

	// Xitsonga
	"xitsonga": "Xitsonga",

	// Siswati
	"siswati": "Siswati",

	// IsiNdebele
	"isindebele": "IsiNdebele",

	// Music only, no spoken language
	"music":          "Music",
	"only music":     "Music",
	"音乐":             "Music",
	"pop music":      "Music",
	"rock":           "Music",
	"soul":           "Music",
	"rnb":            "Music",
	"hiphop":         "Music",
	"vaporwave":      "Music",
	"chill":          "Music",
	"hits":           "Music",
	"top 40":         "Music",
	"soft":           "Music",
	"roots":          "Music",
	"evergreens":     "Music",
	"80s":            "Music",
	"sing along":     "Music",
	"samba e pagode": "Music",
}
