// Package prompt renders the instructions sent to the language model.
// Fields are interpolated verbatim.
package prompt

import "fmt"

// SystemRole is the system message attached to every model call.
const SystemRole = "You are a helpful legal assistant."

// DocumentPrompt asks for a formal legal document template of docType naming
// the parties described by clientInfo.
func DocumentPrompt(docType, clientInfo string) string {
	return fmt.Sprintf(
		"Siz O'zbekiston qonunchiligini biladigan yuridik AI assistentsiz. "+
			"Iltimos, '%s' uchun rasmiy yuridik shablonini generatsiya qiling. "+
			"Hujjatda tomonlar (%s) ko'rsatilsin. "+
			"Shablonni faqat O'zbek tilida yozing.",
		docType, clientInfo,
	)
}

// ChatPrompt asks for a plain but legally precise answer to question.
func ChatPrompt(question string) string {
	return fmt.Sprintf(
		"Siz professional yuridik AI konsultantsiz. Savol: '%s'. "+
			"Javobni O'zbek tilida, sodda, ammo yuridik jihatdan aniq tilda bering. "+
			"Faqat javobni qaytaring.",
		question,
	)
}
