package world

import "cubeland/internal/meshing"

// BufferSet é o conjunto opaco de buffers gráficos de um chunk. A posse
// é exclusiva do chunk que o criou e passa para o cache na inserção;
// depois de Release o handle não existe mais para o núcleo.
type BufferSet interface {
	// Release devolve os buffers à GPU. É chamado exatamente uma vez,
	// quando o chunk sai do cache (ou no teardown).
	Release()
}

// Uploader é a fronteira de upload gráfico: recebe os buffers crus de
// geometria e devolve handles opacos. O núcleo nunca emite draw calls
// nem conhece shaders — só entrega arrays e guarda os handles. Uma
// falha de upload (ex.: esgotamento de recursos) é fatal para o load
// daquele chunk e sobe para o chamador.
type Uploader interface {
	Upload(geo *meshing.Geometry) (BufferSet, error)
}
