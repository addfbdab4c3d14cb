package domain

// FooterComment is appended to HTML responses when the footer is enabled.
const FooterComment = "\n<!--\nPerformance optimized by Better Nginx Cache\nBy Mark Anthony Llego - https://llego.dev/\n-->\n"
