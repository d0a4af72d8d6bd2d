package handler

const formPage = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>Comprobador de palíndromos</title>
</head>
<body>
  <h1>Comprobador de palíndromos</h1>
  <form action="/comprobar" method="get">
    <label for="palabra">Palabra o frase:</label>
    <input type="text" id="palabra" name="palabra" autofocus>
    <button type="submit">Comprobar</button>
  </form>
</body>
</html>
`

const notFoundPage = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>Página no encontrada</title>
</head>
<body>
  <h1>404 - Página no encontrada</h1>
  <p><a href="/">Volver al comprobador</a></p>
</body>
</html>
`
