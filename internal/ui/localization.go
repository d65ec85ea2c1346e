package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"

	"github.com/ytget/image-converter/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyView              = "view"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyHome              = "home"
	KeyOpenConverter     = "open_converter"
	KeyBack              = "back"
	KeyHeroTitle         = "hero_title"
	KeyHeroSubtitle      = "hero_subtitle"
	KeyPlayNow           = "play_now"
	KeyFeaturesTitle     = "features_title"
	KeyFeature1Title     = "feature_multiplayer_title"
	KeyFeature1Desc      = "feature_multiplayer_description"
	KeyFeature2Title     = "feature_tournaments_title"
	KeyFeature2Desc      = "feature_tournaments_description"
	KeyFeature3Title     = "feature_premium_title"
	KeyFeature3Desc      = "feature_premium_description"
	KeyCTATitle          = "cta_title"
	KeyCTASubtitle       = "cta_subtitle"
	KeyGetStarted        = "get_started"
	KeyConverterTitle    = "converter_title"
	KeyChooseImage       = "choose_image"
	KeyDropHint          = "drop_hint"
	KeyNoFileSelected    = "no_file_selected"
	KeyTargetFormat      = "target_format"
	KeyConvert           = "convert"
	KeyDownload          = "download"
	KeyConvertedAlt      = "converted_alt"
	KeyDownloadDirectory = "download_directory"
	KeyDefaultFormat     = "default_format"
	KeyAskSaveLocation   = "ask_save_location"
	KeyAutoRevealSaved   = "auto_reveal_saved"
	KeySaveSettings      = "save_settings"
	KeyInterfaceSettings = "interface_settings"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorReadingFile  = "error_reading_file"
)

// Suffixes appended to a notification key to look up its translated texts
const (
	NotificationTitleSuffix       = "_title"
	NotificationDescriptionSuffix = "_description"
)

// StageKeyPrefix is prepended to a stage name to look up its label
const StageKeyPrefix = "stage_"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when
// it is translated and keeps the current language otherwise.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if text, ok := l.lookup(key); ok {
		return text
	}
	return key
}

// lookup finds key in the current language, then in English
func (l *Localization) lookup(key string) (string, bool) {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text, true
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text, true
		}
	}
	return "", false
}

// NotificationText returns the translated title and description of n,
// falling back to the texts carried by the notification itself
func (l *Localization) NotificationText(n model.Notification) (title, description string) {
	title, description = n.Title, n.Description
	if n.Key == "" {
		return title, description
	}
	if text, ok := l.lookup(n.Key + NotificationTitleSuffix); ok {
		title = text
	}
	if text, ok := l.lookup(n.Key + NotificationDescriptionSuffix); ok {
		description = text
	}
	return title, description
}

// StageText returns the label shown while a conversion is in the given stage
func (l *Localization) StageText(stage model.Stage) string {
	return l.GetText(StageKeyPrefix + strings.ToLower(stage.String()))
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage returns the two-letter language of the OS locale
func systemLanguage() string {
	return strings.ToLower(lang.SystemLocale().LanguageString())
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Converter",
		KeyFile:              "File",
		KeyView:              "View",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyHome:              "Home",
		KeyOpenConverter:     "Open Image Converter",
		KeyBack:              "Back",
		KeyHeroTitle:         "Welcome to 91 Club Games",
		KeyHeroSubtitle:      "Experience premium gaming with stunning visuals and smooth gameplay",
		KeyPlayNow:           "Play Now",
		KeyFeaturesTitle:     "Premium Gaming Experience",
		KeyFeature1Title:     "Multiplayer Games",
		KeyFeature1Desc:      "Play with friends and compete globally",
		KeyFeature2Title:     "Tournaments",
		KeyFeature2Desc:      "Join daily tournaments and win prizes",
		KeyFeature3Title:     "Premium Experience",
		KeyFeature3Desc:      "Enjoy high-quality gaming experience",
		KeyCTATitle:          "Ready to Play?",
		KeyCTASubtitle:       "Join thousands of players and start your gaming journey today",
		KeyGetStarted:        "Get Started",
		KeyConverterTitle:    "Image Converter",
		KeyChooseImage:       "Choose Image",
		KeyDropHint:          "or drop an image file here",
		KeyNoFileSelected:    "No file selected",
		KeyTargetFormat:      "Format",
		KeyConvert:           "Convert",
		KeyDownload:          "Download",
		KeyConvertedAlt:      "Converted",
		KeyDownloadDirectory: "Download Directory",
		KeyDefaultFormat:     "Default Format",
		KeyAskSaveLocation:   "Ask where to save each image",
		KeyAutoRevealSaved:   "Show saved image in file manager",
		KeySaveSettings:      "Saving",
		KeyInterfaceSettings: "Interface",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorReadingFile:  "Error reading file",

		"stage_idle":     "",
		"stage_decoding": "Decoding...",
		"stage_drawing":  "Drawing...",
		"stage_encoding": "Encoding...",
		"stage_done":     "Done",
		"stage_failed":   "Failed",

		"invalid_file_type_title":          "Invalid file type",
		"invalid_file_type_description":    "Please select an image file",
		"conversion_succeeded_title":       "Success!",
		"conversion_succeeded_description": "Image converted successfully",
		"conversion_failed_title":          "Error",
		"conversion_failed_description":    "Failed to convert image",
		"coming_soon_title":                "Coming Soon!",
		"coming_soon_description":          "The game will be available shortly.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Конвертер изображений",
		KeyFile:              "Файл",
		KeyView:              "Вид",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyHome:              "Главная",
		KeyOpenConverter:     "Открыть конвертер",
		KeyBack:              "Назад",
		KeyHeroTitle:         "Добро пожаловать в 91 Club Games",
		KeyHeroSubtitle:      "Премиальные игры с потрясающей графикой и плавным геймплеем",
		KeyPlayNow:           "Играть",
		KeyFeaturesTitle:     "Премиальный игровой опыт",
		KeyFeature1Title:     "Многопользовательские игры",
		KeyFeature1Desc:      "Играйте с друзьями и соревнуйтесь со всем миром",
		KeyFeature2Title:     "Турниры",
		KeyFeature2Desc:      "Участвуйте в ежедневных турнирах и выигрывайте призы",
		KeyFeature3Title:     "Премиум",
		KeyFeature3Desc:      "Наслаждайтесь игрой высокого качества",
		KeyCTATitle:          "Готовы играть?",
		KeyCTASubtitle:       "Присоединяйтесь к тысячам игроков уже сегодня",
		KeyGetStarted:        "Начать",
		KeyConverterTitle:    "Конвертер изображений",
		KeyChooseImage:       "Выбрать изображение",
		KeyDropHint:          "или перетащите файл сюда",
		KeyNoFileSelected:    "Файл не выбран",
		KeyTargetFormat:      "Формат",
		KeyConvert:           "Конвертировать",
		KeyDownload:          "Скачать",
		KeyConvertedAlt:      "Результат",
		KeyDownloadDirectory: "Папка сохранения",
		KeyDefaultFormat:     "Формат по умолчанию",
		KeyAskSaveLocation:   "Спрашивать, куда сохранять",
		KeyAutoRevealSaved:   "Показывать файл после сохранения",
		KeySaveSettings:      "Сохранение",
		KeyInterfaceSettings: "Интерфейс",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorReadingFile:  "Ошибка чтения файла",

		"stage_idle":     "",
		"stage_decoding": "Декодирование...",
		"stage_drawing":  "Отрисовка...",
		"stage_encoding": "Кодирование...",
		"stage_done":     "Готово",
		"stage_failed":   "Ошибка",

		"invalid_file_type_title":          "Неверный тип файла",
		"invalid_file_type_description":    "Пожалуйста, выберите изображение",
		"conversion_succeeded_title":       "Готово!",
		"conversion_succeeded_description": "Изображение успешно сконвертировано",
		"conversion_failed_title":          "Ошибка",
		"conversion_failed_description":    "Не удалось сконвертировать изображение",
		"coming_soon_title":                "Скоро!",
		"coming_soon_description":          "Игра скоро будет доступна.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Conversor de Imagens",
		KeyFile:              "Arquivo",
		KeyView:              "Exibir",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyHome:              "Início",
		KeyOpenConverter:     "Abrir Conversor de Imagens",
		KeyBack:              "Voltar",
		KeyHeroTitle:         "Bem-vindo ao 91 Club Games",
		KeyHeroSubtitle:      "Jogos premium com visuais impressionantes e jogabilidade suave",
		KeyPlayNow:           "Jogar Agora",
		KeyFeaturesTitle:     "Experiência de Jogo Premium",
		KeyFeature1Title:     "Jogos Multijogador",
		KeyFeature1Desc:      "Jogue com amigos e compita globalmente",
		KeyFeature2Title:     "Torneios",
		KeyFeature2Desc:      "Participe de torneios diários e ganhe prêmios",
		KeyFeature3Title:     "Experiência Premium",
		KeyFeature3Desc:      "Aproveite uma experiência de jogo de alta qualidade",
		KeyCTATitle:          "Pronto para Jogar?",
		KeyCTASubtitle:       "Junte-se a milhares de jogadores e comece hoje",
		KeyGetStarted:        "Começar",
		KeyConverterTitle:    "Conversor de Imagens",
		KeyChooseImage:       "Escolher Imagem",
		KeyDropHint:          "ou solte um arquivo de imagem aqui",
		KeyNoFileSelected:    "Nenhum arquivo selecionado",
		KeyTargetFormat:      "Formato",
		KeyConvert:           "Converter",
		KeyDownload:          "Baixar",
		KeyConvertedAlt:      "Convertida",
		KeyDownloadDirectory: "Diretório de Download",
		KeyDefaultFormat:     "Formato Padrão",
		KeyAskSaveLocation:   "Perguntar onde salvar cada imagem",
		KeyAutoRevealSaved:   "Mostrar imagem salva no gerenciador de arquivos",
		KeySaveSettings:      "Salvamento",
		KeyInterfaceSettings: "Interface",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorReadingFile:  "Erro ao ler arquivo",

		"stage_idle":     "",
		"stage_decoding": "Decodificando...",
		"stage_drawing":  "Desenhando...",
		"stage_encoding": "Codificando...",
		"stage_done":     "Concluído",
		"stage_failed":   "Falhou",

		"invalid_file_type_title":          "Tipo de arquivo inválido",
		"invalid_file_type_description":    "Por favor, selecione um arquivo de imagem",
		"conversion_succeeded_title":       "Sucesso!",
		"conversion_succeeded_description": "Imagem convertida com sucesso",
		"conversion_failed_title":          "Erro",
		"conversion_failed_description":    "Falha ao converter imagem",
		"coming_soon_title":                "Em Breve!",
		"coming_soon_description":          "O jogo estará disponível em breve.",
	}
}
